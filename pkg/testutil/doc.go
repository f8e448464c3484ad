// Package testutil provides test helpers: isolated XDG environments, rule
// file fixtures and small file utilities.
package testutil
