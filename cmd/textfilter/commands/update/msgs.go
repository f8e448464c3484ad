package update

// Message constants
const (
	MsgShort        = "Change fields of a rule"
	MsgLong         = `Update changes the given fields of a rule. Every change is validated before
anything is written; a failing update leaves the rule file untouched.`
	MsgExample      = `  textfilter update cat --replace lion
  textfilter update cat --active=false`
	MsgFlagSource   = "New pattern"
	MsgFlagFlags    = "New pattern flags"
	MsgFlagReplace  = "New replacement template"
	MsgFlagActive   = "Enable or disable the rule"
	MsgFlagLinks    = "Whether the rule runs when filtering links"
	MsgErrNoChanges = "no changes given; pass at least one of --source, --flags, --replace, --active, --links"
)
