// Package migrations contains the schema history of the products table.
// Each migration registers itself via init() and is reversible: Down exactly
// undoes Up. The package is blank-imported by cmd/server so registration
// happens at CLI startup.
package migrations
