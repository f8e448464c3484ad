package show

// Message constants
const (
	MsgShort   = "Show one rule in detail"
	MsgLong    = `Show prints a single rule. In a terminal the rule is rendered as a small
markdown document.`
	MsgExample = `  textfilter show "letters and numbers"`
)
