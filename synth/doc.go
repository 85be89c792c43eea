// Package synth implements the schema-to-type synthesis and deduplication
// engine.
//
// The engine walks the parameter, request body, and response fragments of a
// fully-resolved operation list and produces a minimal, named set of type
// declarations plus structurally mirrored runtime validator expressions.
// Structural deduplication is keyed on canonical fingerprints
// (schema.Fingerprint); author-given component names always win over
// synthesized fallback names, and a post-pass collapses structurally
// identical per-operation response types into one canonical declaration plus
// aliases.
//
// # Usage
//
//	index, warns, err := synth.BuildNameIndex(registry)
//	if err != nil {
//		return err
//	}
//	result, err := synth.Synthesize(ops, synth.WithNameIndex(index))
//	if err != nil {
//		return err
//	}
//
// A synthesis run owns its entire state (type table, fallback name counter,
// fingerprint cache); hosts that parallelize across independent
// specifications simply invoke Synthesize once per specification. Recoverable
// per-fragment conditions (cyclic shapes, empty enums, malformed nodes)
// degrade to opaque expressions and surface as accumulated warnings on the
// result; only structurally invalid top-level input fails the run.
package synth
