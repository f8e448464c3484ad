package validate

// Message constants
const (
	MsgShort   = "Check that a pattern compiles"
	MsgLong    = `Validate compiles the pattern the same way a rule would and reports the
engine's diagnostic when it fails.`
	MsgExample = `  textfilter validate '[a-z]{2}(\d+)'`
)
