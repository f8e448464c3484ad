package records

import (
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
)

// Field names of a rule record
const (
	FieldName        = "name"
	FieldSource      = "source"
	FieldFlags       = "flags"
	FieldReplace     = "replace"
	FieldActive      = "active"
	FieldFilterLinks = "filterlinks"
)

// Record is the serializable form of a rule
type Record struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Source      string `json:"source" toml:"source" yaml:"source"`
	Flags       string `json:"flags" toml:"flags" yaml:"flags"`
	Replace     string `json:"replace" toml:"replace" yaml:"replace"`
	Active      bool   `json:"active" toml:"active" yaml:"active"`
	FilterLinks bool   `json:"filterlinks" toml:"filterlinks" yaml:"filterlinks"`
}

// Rule compiles the record into a rule
func (r Record) Rule() (*filter.Rule, error) {
	return filter.NewRule(r.Name, r.Source, r.Flags, r.Replace, r.Active, r.FilterLinks)
}

// FromRule converts a rule back into a record. Flags come out in canonical
// order.
func FromRule(rule *filter.Rule) Record {
	return Record{
		Name:        rule.Name(),
		Source:      rule.Source(),
		Flags:       rule.Flags(),
		Replace:     rule.Replacement(),
		Active:      rule.Active(),
		FilterLinks: rule.AppliesToLinks(),
	}
}

// FromRecords builds a rule set from recs. It fails as a whole on the first
// record that does not compile or repeats a name; no partial set is returned.
func FromRecords(recs []Record) (*filter.RuleSet, error) {
	set := filter.NewRuleSet()
	for i, rec := range recs {
		rule, err := rec.Rule()
		if err != nil {
			return nil, withIndex(err, i)
		}
		if err := set.Add(rule); err != nil {
			return nil, withIndex(err, i)
		}
	}
	return set, nil
}

// Pack returns the records of every rule in set, in execution order
func Pack(set *filter.RuleSet) []Record {
	rules := set.Rules()
	recs := make([]Record, len(rules))
	for i, rule := range rules {
		recs[i] = FromRule(rule)
	}
	return recs
}

func withIndex(err error, index int) error {
	if details := errors.GetErrorDetails(err); details != nil {
		details["index"] = index
		return err
	}
	return errors.Wrapf(err, errors.ErrInvalidInput, "rule at index %d is invalid", index).
		WithDetail("index", index)
}
