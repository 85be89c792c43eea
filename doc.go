// Package typeforge synthesizes minimal, named type declarations and matching
// runtime validators from fully-resolved API operation schemas.
//
// typeforge consumes an operation list produced by an external specification
// loader (parameters, request bodies, and responses as JSON-Schema-shaped
// fragments) and emits a deduplicated set of named declarations plus
// per-operation type references, ready for a downstream code emitter.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - schema: the schema fragment data model, canonical fingerprinting, and
//     decoding of JSON-Schema-shaped YAML/JSON fragments
//   - synth: the synthesis engine (component name index, type table,
//     extraction policy, type and validator synthesis, response aliasing)
//   - forgeerrors: structured error types for programmatic error handling
//
// # Quick Start
//
// Synthesize declarations for a set of operations:
//
//	import (
//		"github.com/erraggy/typeforge/schema"
//		"github.com/erraggy/typeforge/synth"
//	)
//
//	ops := []synth.Operation{{
//		ID: "getRepo",
//		Responses: []synth.Response{{Status: 200, Schema: repoSchema}},
//	}}
//	result, err := synth.Synthesize(ops, synth.WithNameIndex(index))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, decl := range result.Declarations {
//		fmt.Println(decl.Name)
//	}
//
// Declarations come back in registration order together with validator
// expressions, response aliases, and any warnings accumulated while degrading
// malformed or cyclic fragments.
package typeforge
