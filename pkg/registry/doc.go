// Package registry provides a generic, thread-safe store of named items.
// The host package keeps one rule session per room in it.
package registry
