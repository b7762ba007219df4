// Package memory provides the in-memory implementation of driven.Catalog.
//
// A Catalog is validated and copied on construction and is immutable
// afterwards. Accessors hand out copies, so it is safe to share across
// goroutines without locking.
//
// Builtin returns the bundled Whistler catalog. New builds a catalog from
// arbitrary records, which the file and SQLite loaders and the tests use.
package memory
