package add

// Message constants
const (
	MsgShort        = "Append a rule"
	MsgLong         = `Add compiles a new rule and appends it to the rule file. The file is created
when it does not exist yet.`
	MsgExample      = `  textfilter add cat cat dog --flags g
  textfilter add numbers '[a-z]{2}(\d+)' 'the number is \1' --flags gi`
	MsgFlagFlags    = "Pattern flags: g global, i case-insensitive, m multi-line"
	MsgFlagInactive = "Add the rule disabled"
	MsgFlagLinks    = "Also run the rule when filtering links"
)
