package pack

// Message constants
const (
	MsgShort   = "Print the rule file in another encoding"
	MsgLong    = `Pack loads the rule file, compiles every rule, and writes the records back out
in the requested encoding. Flags come out in canonical order.

Supported encodings: json, toml, yaml, xml.`
	MsgExample = `  textfilter pack --rules rules.json --as yaml
  textfilter pack --rules rules.yaml --out rules.xml`
	MsgFlagAs  = "Output encoding: json, toml, yaml or xml"
	MsgFlagOut = "Write to this file instead of stdout; the encoding follows its extension"
)
