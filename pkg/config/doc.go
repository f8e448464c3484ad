// Package config loads textfilter settings. Values are layered: the embedded
// defaults, then the user's config file, then TEXTFILTER_* environment
// variables, then explicit overrides.
package config
