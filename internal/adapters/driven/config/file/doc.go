// Package file provides the TOML file implementation of driven.ConfigStore.
//
// Nested tables are flattened into dotted keys on load ("[server] port"
// becomes "server.port") and written back as tables on save.
package file
