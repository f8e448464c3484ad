package list

// Message constants
const (
	MsgShort   = "List rules in execution order"
	MsgLong    = `List prints every rule of the rule file with its position, pattern, flags,
replacement and toggles.`
	MsgExample = `  textfilter list --rules rules.toml
  textfilter list --format json`
)
