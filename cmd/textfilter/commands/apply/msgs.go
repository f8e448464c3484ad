package apply

// Message constants
const (
	MsgShort           = "Run the rule chain over text"
	MsgLong            = `Apply runs every eligible rule over the text, in order, and prints the result.
Text is read from the arguments, or from stdin when none are given.

Each rule's output is capped by --limit; --chain-budget caps the whole chain.`
	MsgExample         = `  textfilter apply --rules rules.json "the cat sat"
  echo "see www.example.com" | textfilter apply --links`
	MsgFlagLinks       = "Filter as a link: only rules with filterlinks set run"
	MsgFlagLimit       = "Per-rule output length limit in characters, 0 or less selects 1000 (default from config)"
	MsgFlagChainBudget = "Whole-chain output budget in characters, 0 disables (default from config)"
	MsgFlagMetrics     = "Print execution metrics to stderr in the Prometheus text format"
	MsgErrReadInput    = "failed to read input: %w"
)
