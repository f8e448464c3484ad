package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/textfilter/pkg/records"
)

// Environment is an isolated set of XDG directories plus a scratch
// directory for rule files. Environment variables are restored when the
// test ends.
type Environment struct {
	ConfigHome string
	StateHome  string
	Dir        string

	t *testing.T
}

// NewEnvironment points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temp
// directories, unsets the TEXTFILTER_ settings and disables color
// output
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	env := &Environment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		Dir:        t.TempDir(),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{
		"TEXTFILTER_FILTER_LENGTH_LIMIT",
		"TEXTFILTER_FILTER_CHAIN_BUDGET",
		"TEXTFILTER_FILTER_MODE",
		"TEXTFILTER_RULES_FILE",
		"TEXTFILTER_LOG_FILE",
	} {
		// Setenv registers the restore, Unsetenv makes the key absent
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	return env
}

// ConfigPath returns where the user config file lives in this environment
func (e *Environment) ConfigPath() string {
	return filepath.Join(e.ConfigHome, "textfilter", "config.toml")
}

// WriteConfig writes the user config file and returns its path
func (e *Environment) WriteConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, filepath.Dir(e.ConfigPath()), filepath.Base(e.ConfigPath()), content)
}

// WriteRules saves recs under Dir. The encoding follows the extension of
// name.
func (e *Environment) WriteRules(name string, recs []records.Record) string {
	e.t.Helper()

	path := filepath.Join(e.Dir, name)
	if err := records.SaveFile(path, recs); err != nil {
		e.t.Fatalf("Failed to write rules to %s: %v", path, err)
	}
	return path
}
