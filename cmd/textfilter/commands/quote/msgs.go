package quote

// Message constants
const (
	MsgShort   = "Escape text for use as a literal pattern"
	MsgLong    = `Quote escapes every character of the text that has a meaning in patterns, so
the result matches the text literally.`
	MsgExample = "  textfilter quote 'cost: $5 (approx.)'"
)
