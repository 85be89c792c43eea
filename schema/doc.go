// Package schema defines the schema fragment data model used by the
// typeforge synthesis engine.
//
// A fragment is a closed tagged union over the supported JSON Schema subset:
// primitives (string, number, boolean), enums of string literals, arrays, and
// objects with ordered properties and a required set. Each variant can be
// marked nullable. Fragments are immutable once constructed and acyclic by
// contract; a fragment reachable from itself cannot be fingerprinted and is
// degraded by the engine rather than processed.
//
// The package provides:
//
//   - Node and its constructors for building fragments programmatically
//   - Fingerprint, a deterministic structural hash used as the engine's
//     deduplication key
//   - DecodeBytes, which decodes JSON-Schema-shaped YAML or JSON fragments
//     into Nodes while preserving property source order
package schema
