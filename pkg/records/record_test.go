package records_test

import (
	"testing"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
	"github.com/arthur-debert/textfilter/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []records.Record {
	return []records.Record{
		{Name: "abcdef", Source: "abc", Flags: "", Replace: "def", Active: true},
		{Name: "ghijkl", Source: "ghi", Flags: "ig", Replace: "jkl", Active: true},
		{Name: "letters and numbers", Source: `[a-z]{2}(\d+)`, Flags: "g", Replace: `the number is \1`, Active: true},
		{Name: "links", Source: `https?://`, Flags: "mgi", Replace: "", Active: false, FilterLinks: true},
	}
}

func canonical(recs []records.Record) []records.Record {
	out := make([]records.Record, len(recs))
	for i, r := range recs {
		r.Flags = filter.CanonicalFlags(r.Flags)
		out[i] = r
	}
	return out
}

func TestFromRecordsPackRoundTrip(t *testing.T) {
	recs := sampleRecords()

	set, err := records.FromRecords(recs)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	assert.Equal(t, canonical(recs), records.Pack(set))
}

func TestFromRecordsEmpty(t *testing.T) {
	set, err := records.FromRecords(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, records.Pack(set))
}

func TestFromRecordsFailsAtomically(t *testing.T) {
	tests := []struct {
		name      string
		bad       records.Record
		wantCode  errors.ErrorCode
		wantIndex int
	}{
		{"invalid pattern", records.Record{Name: "broken", Source: "(x"}, errors.ErrCompile, 4},
		{"duplicate name", records.Record{Name: "ghijkl", Source: "x"}, errors.ErrDuplicateName, 4},
		{"empty name", records.Record{Source: "x"}, errors.ErrFieldValidation, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := append(sampleRecords(), tt.bad)

			set, err := records.FromRecords(recs)
			assert.Nil(t, set)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, tt.wantIndex, errors.GetErrorDetails(err)["index"])
		})
	}
}

func TestRecordRule(t *testing.T) {
	rule, err := records.Record{Name: "a", Source: "cat", Flags: "g", Replace: "dog", Active: true}.Rule()
	require.NoError(t, err)

	set := filter.NewRuleSet()
	require.NoError(t, set.Add(rule))
	assert.Equal(t, "dog dog", set.Execute("cat cat", filter.Prose, 1000))
}

func TestDecodeLoose(t *testing.T) {
	valid := map[string]interface{}{
		"name":        "a",
		"source":      "cat",
		"flags":       "g",
		"replace":     "dog",
		"active":      true,
		"filterlinks": false,
		"extra":       42,
	}

	t.Run("valid list", func(t *testing.T) {
		recs, err := records.DecodeLoose([]interface{}{valid})
		require.NoError(t, err)
		assert.Equal(t, []records.Record{{Name: "a", Source: "cat", Flags: "g", Replace: "dog", Active: true}}, recs)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := records.DecodeLoose(2.3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Argument must be an array")
	})

	t.Run("element not an object", func(t *testing.T) {
		_, err := records.DecodeLoose([]interface{}{valid, valid, valid, "abcdef"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Filter at index 3 is not an object")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFieldValidation))
	})

	t.Run("empty object", func(t *testing.T) {
		_, err := records.DecodeLoose([]interface{}{valid, map[string]interface{}{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Filter at index 1 is invalid")
		assert.Contains(t, err.Error(), `field "name" is missing`)
	})

	wrongTypes := map[string]interface{}{
		"name":        1,
		"source":      true,
		"flags":       nil,
		"replace":     []interface{}{},
		"active":      "true",
		"filterlinks": 0,
	}
	for field, bad := range wrongTypes {
		t.Run("wrong type for "+field, func(t *testing.T) {
			obj := map[string]interface{}{}
			for k, v := range valid {
				obj[k] = v
			}
			obj[field] = bad

			_, err := records.DecodeLoose([]interface{}{obj})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Filter at index 0 is invalid")
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestParseUpdate(t *testing.T) {
	t.Run("typed fields", func(t *testing.T) {
		u, err := records.ParseUpdate(map[string]interface{}{
			"name":        "ignored",
			"source":      "x",
			"flags":       "gi",
			"replace":     "y",
			"active":      false,
			"filterlinks": true,
			"unknown":     123,
		})
		require.NoError(t, err)
		require.NotNil(t, u.Source)
		require.NotNil(t, u.Flags)
		require.NotNil(t, u.Replacement)
		require.NotNil(t, u.Active)
		require.NotNil(t, u.AppliesToLinks)
		assert.Equal(t, "x", *u.Source)
		assert.Equal(t, "gi", *u.Flags)
		assert.Equal(t, "y", *u.Replacement)
		assert.False(t, *u.Active)
		assert.True(t, *u.AppliesToLinks)
	})

	t.Run("partial", func(t *testing.T) {
		u, err := records.ParseUpdate(map[string]interface{}{"active": true})
		require.NoError(t, err)
		assert.Nil(t, u.Source)
		require.NotNil(t, u.Active)
		assert.True(t, *u.Active)
	})

	t.Run("empty", func(t *testing.T) {
		u, err := records.ParseUpdate(nil)
		require.NoError(t, err)
		assert.True(t, u.IsEmpty())
	})

	t.Run("wrong type rejects the whole update", func(t *testing.T) {
		u, err := records.ParseUpdate(map[string]interface{}{
			"source": "fine",
			"active": "yes",
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFieldValidation))
		assert.Equal(t, "active", errors.GetErrorDetails(err)["field"])
		assert.True(t, u.IsEmpty())
	})
}
