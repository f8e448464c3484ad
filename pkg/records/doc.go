// Package records is the boundary between a host application and the filter
// core. It defines the stable rule record shape, builds rule sets from
// records, packs rule sets back into records, and validates loosely typed
// host data before anything reaches the core.
//
// A record has six fields, stable across every encoding:
//
//	name        string
//	source      string
//	flags       string
//	replace     string
//	active      bool
//	filterlinks bool
//
// Record lists can be read from and written to JSON (comments allowed), TOML,
// YAML and XML.
package records
