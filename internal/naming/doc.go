// Package naming provides shared identifier utilities for typeforge packages.
//
// This internal package contains the string transformations used when turning
// specification identifiers into declaration names. Functions include
// ToPascalCase, ToTypeName, ResponseName, and Disambiguate.
//
// These functions are used for:
//   - synth package: fallback declaration names, response default names,
//     and collision suffixing in the type table
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
