// Package tomlfile loads the rental catalog from a TOML document with
// [[properties]], [[neighborhoods]] and [[platforms]] arrays of tables.
package tomlfile
