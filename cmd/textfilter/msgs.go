package textfilter

// Message constants
const (
	MsgRootShort = "Apply ordered pattern-substitution rules to text"
	MsgRootLong  = `textfilter rewrites untrusted text with an ordered list of substitution
rules. Every match attempt has a fixed work limit and every rule's output is
length-capped, so hostile patterns or replacements cannot run away.

Rules live in a rule file (JSON, TOML, YAML or XML) given with --rules or
configured as rules.file.`
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/textfilter/config.toml)"
	MsgFlagRules   = "Rule file; the encoding follows the extension (default from config)"
	MsgFlagFormat  = "Output format: auto, term, text or json"

	// Error messages
	MsgErrNoRuleFile  = "no rule file; pass --rules or set rules.file in the config"
	MsgErrNoCommand   = "no command specified"
	MsgErrRuleMissing = "rule %q not found"

	// Version output
	MsgVersionFormat = "textfilter version %s\n  commit: %s\n  built:  %s\n"
)

// MsgUsageTemplate is the cobra usage template, using the helpers from
// formatting.go
const MsgUsageTemplate = `{{boldUpper "usage"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "commands"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "additional commands"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
