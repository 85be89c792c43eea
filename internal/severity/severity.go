// Package severity provides severity level constants and utilities
// for warnings reported by the synth and schema packages.
//
// The severity levels are ordered from most to least severe:
// Error < Warning < Info
package severity

// Severity indicates the severity level of a diagnostic recorded during
// synthesis.
type Severity int

const (
	// SeverityError indicates a condition that made a fragment unusable.
	// The fragment is degraded rather than aborting the run.
	SeverityError Severity = iota

	// SeverityWarning indicates a lossy degradation or a resolution the
	// caller should review (cyclic shapes, empty enums, malformed nodes).
	SeverityWarning

	// SeverityInfo indicates informational messages about processing
	// choices (dedup hits, aliasing, suffix disambiguation).
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
