// Package host is the surface a chat or content application embeds. A
// Session wraps one RuleSet behind a mutex, takes rule records in the shared
// record shape, and reports edits as Result values instead of errors. A
// Registry keeps one Session per room.
package host
