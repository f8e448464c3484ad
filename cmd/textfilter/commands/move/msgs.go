package move

// Message constants
const (
	MsgShort    = "Swap two rules"
	MsgLong     = `Move swaps the rules at two positions. Positions start at 0 and follow the
order printed by list.`
	MsgExample  = "  textfilter move 0 1"
	MsgErrIndex = "position %q is not a number"
)
