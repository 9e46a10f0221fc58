// Package typed holds arity-typed wrappers over the hooks package in
// which the dependency list is part of the function signature: each
// dependency is a comparable type parameter and is handed to the compute
// or effect body as an argument, so a captured value cannot be left out of
// the list. typed.go is produced by cmd/codegen.
package typed
