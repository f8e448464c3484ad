package remove

// Message constants
const (
	MsgShort   = "Delete a rule"
	MsgLong    = "Remove deletes a rule from the rule file."
	MsgExample = "  textfilter remove cat"
)
