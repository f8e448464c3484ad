package textfilter

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/host"
	"github.com/arthur-debert/textfilter/pkg/logging"
	"github.com/arthur-debert/textfilter/pkg/records"
)

// rulesFile returns the rule file from --rules, falling back to rules.file
func (o *rootOptions) rulesFile() (string, error) {
	if o.rulesPath != "" {
		return o.rulesPath, nil
	}
	if o.cfg != nil && o.cfg.Rules.File != "" {
		return o.cfg.Rules.File, nil
	}
	return "", errors.New(errors.ErrInvalidInput, MsgErrNoRuleFile)
}

// sessionOptions returns session options taken from the configuration
func (o *rootOptions) sessionOptions() host.Options {
	return host.Options{
		LengthLimit: o.cfg.Filter.LengthLimit,
		ChainBudget: o.cfg.Filter.ChainBudget,
	}
}

// openSession compiles the rule file into a session. With allowMissing a
// file that does not exist yet yields an empty session.
func (o *rootOptions) openSession(allowMissing bool, opts host.Options) (*host.Session, string, error) {
	path, err := o.rulesFile()
	if err != nil {
		return nil, "", err
	}

	recs, err := records.LoadFile(path)
	if err != nil {
		if !allowMissing || !stderrors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
		logger := logging.GetLogger("cmd.rules")
		logger.Info().Str("path", path).Msg("Rule file does not exist, starting empty")
		recs = nil
	}

	session, err := host.NewSession(recs, opts)
	if err != nil {
		return nil, "", err
	}
	return session, path, nil
}

// commitResult writes the session back to path when res succeeded, then
// renders res. A failed result leaves the file untouched and yields
// errReported.
func (o *rootOptions) commitResult(session *host.Session, path string, res host.Result) error {
	if res.OK {
		if err := records.SaveFile(path, session.Pack()); err != nil {
			return err
		}
		logger := logging.GetLogger("cmd.rules")
		logger.Info().Str("path", path).Int("rules", session.Len()).Msg("Rule file saved")
	}

	if err := o.renderer.Result(res); err != nil {
		return err
	}
	if !res.OK {
		return errReported
	}
	return nil
}
