package genconfig

// Message constants
const (
	MsgShort     = "Print the default configuration"
	MsgLong      = `Genconfig prints the default configuration with comments. With --write it is
saved to the user config file instead, unless that file already exists.`
	MsgExample   = `  textfilter genconfig > ~/.config/textfilter/config.toml
  textfilter genconfig --write`
	MsgFlagWrite = "Write to the user config file"
	MsgWritten   = "Wrote %s"
	MsgErrExists = "%s already exists"
)
