package records

import (
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
)

func (k fieldKind) String() string {
	if k == kindBool {
		return "boolean"
	}
	return "string"
}

// recordFields lists every record field in a fixed order so validation
// errors are deterministic
var recordFields = []struct {
	name string
	kind fieldKind
}{
	{FieldName, kindString},
	{FieldSource, kindString},
	{FieldFlags, kindString},
	{FieldReplace, kindString},
	{FieldActive, kindBool},
	{FieldFilterLinks, kindBool},
}

// DecodeLoose converts host data of unknown shape into records. v must be a
// list of objects carrying all six record fields with the right types.
// Extra keys are ignored.
func DecodeLoose(v interface{}) ([]Record, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, errors.New(errors.ErrFieldValidation, "Argument must be an array")
	}

	recs := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrFieldValidation, "Filter at index %d is not an object", i).
				WithDetail("index", i)
		}

		rec, err := recordFromObject(obj)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFieldValidation, "Filter at index %d is invalid", i).
				WithDetail("index", i)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func recordFromObject(obj map[string]interface{}) (Record, error) {
	for _, f := range recordFields {
		if err := checkField(obj, f.name, f.kind, true); err != nil {
			return Record{}, err
		}
	}

	return Record{
		Name:        obj[FieldName].(string),
		Source:      obj[FieldSource].(string),
		Flags:       obj[FieldFlags].(string),
		Replace:     obj[FieldReplace].(string),
		Active:      obj[FieldActive].(bool),
		FilterLinks: obj[FieldFilterLinks].(bool),
	}, nil
}

func checkField(obj map[string]interface{}, name string, kind fieldKind, required bool) error {
	v, present := obj[name]
	if !present {
		if required {
			return errors.Newf(errors.ErrFieldValidation, "field %q is missing", name).
				WithDetail("field", name)
		}
		return nil
	}

	var ok bool
	switch kind {
	case kindString:
		_, ok = v.(string)
	case kindBool:
		_, ok = v.(bool)
	}
	if !ok {
		return errors.Newf(errors.ErrFieldValidation, "field %q must be a %s, got %T", name, kind, v).
			WithDetail("field", name)
	}
	return nil
}

// ParseUpdate turns a loosely typed change set into a filter.RuleUpdate.
// Every present field is type-checked before anything is returned; the name
// field and unknown keys are ignored since the rule is addressed separately.
func ParseUpdate(changes map[string]interface{}) (filter.RuleUpdate, error) {
	var u filter.RuleUpdate

	for _, f := range recordFields {
		if f.name == FieldName {
			continue
		}
		if err := checkField(changes, f.name, f.kind, false); err != nil {
			return filter.RuleUpdate{}, err
		}
	}

	if v, ok := changes[FieldSource].(string); ok {
		u.Source = &v
	}
	if v, ok := changes[FieldFlags].(string); ok {
		u.Flags = &v
	}
	if v, ok := changes[FieldReplace].(string); ok {
		u.Replacement = &v
	}
	if v, ok := changes[FieldActive].(bool); ok {
		u.Active = &v
	}
	if v, ok := changes[FieldFilterLinks].(bool); ok {
		u.AppliesToLinks = &v
	}
	return u, nil
}
