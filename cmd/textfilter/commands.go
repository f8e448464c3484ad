package textfilter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/add"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/apply"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/genconfig"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/list"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/move"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/pack"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/quote"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/remove"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/show"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/update"
	"github.com/arthur-debert/textfilter/cmd/textfilter/commands/validate"
	"github.com/arthur-debert/textfilter/pkg/config"
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
	"github.com/arthur-debert/textfilter/pkg/host"
	"github.com/arthur-debert/textfilter/pkg/logging"
	"github.com/arthur-debert/textfilter/pkg/metrics"
	"github.com/arthur-debert/textfilter/pkg/records"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newApplyCmd(o *rootOptions) *cobra.Command {
	var (
		links       bool
		limit       int
		chainBudget int
		showMetrics bool
	)

	cmd := apply.NewCommand()
	cmd.Flags().BoolVarP(&links, "links", "l", false, apply.MsgFlagLinks)
	cmd.Flags().IntVar(&limit, "limit", 0, apply.MsgFlagLimit)
	cmd.Flags().IntVar(&chainBudget, "chain-budget", 0, apply.MsgFlagChainBudget)
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, apply.MsgFlagMetrics)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts := o.sessionOptions()
		if cmd.Flags().Changed("limit") {
			opts.LengthLimit = limit
		}
		if cmd.Flags().Changed("chain-budget") {
			opts.ChainBudget = chainBudget
		}

		reg := prometheus.NewRegistry()
		opts.Observer = metrics.New(reg)

		session, path, err := o.openSession(false, opts)
		if err != nil {
			return err
		}

		mode := o.cfg.Filter.ExecMode()
		if links {
			mode = filter.Links
		}

		done := logging.LogOperationStart(logging.GetLogger("cmd.apply"), "apply")
		out := session.Execute(text, mode)
		done()

		log.Info().
			Str("rules", path).
			Stringer("mode", mode).
			Int("limit", session.Limit()).
			Int("chain_budget", opts.ChainBudget).
			Msg("Text filtered")

		if showMetrics {
			if err := metrics.WriteText(cmd.ErrOrStderr(), reg); err != nil {
				return err
			}
		}
		return o.renderer.Text(out)
	}
	return cmd
}

// readInput joins the arguments, or reads stdin when there are none. A
// single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf(apply.MsgErrReadInput, err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func newListCmd(o *rootOptions) *cobra.Command {
	cmd := list.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		session, _, err := o.openSession(false, o.sessionOptions())
		if err != nil {
			return err
		}
		return o.renderer.Rules(session.Pack())
	}
	return cmd
}

func newShowCmd(o *rootOptions) *cobra.Command {
	cmd := show.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		session, _, err := o.openSession(false, o.sessionOptions())
		if err != nil {
			return err
		}
		for _, rec := range session.Pack() {
			if rec.Name == args[0] {
				return o.renderer.Rule(rec)
			}
		}
		return errors.Newf(errors.ErrNotFound, MsgErrRuleMissing, args[0])
	}
	return cmd
}

func newPackCmd(o *rootOptions) *cobra.Command {
	var as, out string

	cmd := pack.NewCommand()
	cmd.Flags().StringVar(&as, "as", string(records.FormatJSON), pack.MsgFlagAs)
	cmd.Flags().StringVarP(&out, "out", "o", "", pack.MsgFlagOut)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		session, _, err := o.openSession(false, o.sessionOptions())
		if err != nil {
			return err
		}
		recs := session.Pack()

		if out != "" {
			if err := records.SaveFile(out, recs); err != nil {
				return err
			}
			return o.renderer.Message(fmt.Sprintf("Wrote %d rules to %s", len(recs), out))
		}

		format, err := records.ParseFormat(as)
		if err != nil {
			return err
		}
		data, err := records.Marshal(format, recs)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return cmd
}

func newAddCmd(o *rootOptions) *cobra.Command {
	var (
		flags    string
		inactive bool
		links    bool
	)

	cmd := add.NewCommand()
	cmd.Flags().StringVar(&flags, "flags", "", add.MsgFlagFlags)
	cmd.Flags().BoolVar(&inactive, "inactive", false, add.MsgFlagInactive)
	cmd.Flags().BoolVarP(&links, "links", "l", false, add.MsgFlagLinks)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		session, path, err := o.openSession(true, o.sessionOptions())
		if err != nil {
			return err
		}

		rec := records.Record{
			Name:        args[0],
			Source:      args[1],
			Flags:       flags,
			Active:      !inactive,
			FilterLinks: links,
		}
		if len(args) == 3 {
			rec.Replace = args[2]
		}
		return o.commitResult(session, path, session.Add(rec))
	}
	return cmd
}

func newUpdateCmd(o *rootOptions) *cobra.Command {
	var (
		source, flags, replace string
		active, links          bool
	)

	cmd := update.NewCommand()
	cmd.Flags().StringVar(&source, "source", "", update.MsgFlagSource)
	cmd.Flags().StringVar(&flags, "flags", "", update.MsgFlagFlags)
	cmd.Flags().StringVar(&replace, "replace", "", update.MsgFlagReplace)
	cmd.Flags().BoolVar(&active, "active", true, update.MsgFlagActive)
	cmd.Flags().BoolVar(&links, "links", false, update.MsgFlagLinks)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		changes := map[string]interface{}{}
		set := func(flag, field string, value interface{}) {
			if cmd.Flags().Changed(flag) {
				changes[field] = value
			}
		}
		set("source", records.FieldSource, source)
		set("flags", records.FieldFlags, flags)
		set("replace", records.FieldReplace, replace)
		set("active", records.FieldActive, active)
		set("links", records.FieldFilterLinks, links)
		if len(changes) == 0 {
			return errors.New(errors.ErrInvalidInput, update.MsgErrNoChanges)
		}

		session, path, err := o.openSession(false, o.sessionOptions())
		if err != nil {
			return err
		}
		return o.commitResult(session, path, session.Update(args[0], changes))
	}
	return cmd
}

func newRemoveCmd(o *rootOptions) *cobra.Command {
	cmd := remove.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		session, path, err := o.openSession(false, o.sessionOptions())
		if err != nil {
			return err
		}
		return o.commitResult(session, path, session.Remove(args[0]))
	}
	return cmd
}

func newMoveCmd(o *rootOptions) *cobra.Command {
	cmd := move.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		positions := make([]int, 2)
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, move.MsgErrIndex, arg)
			}
			positions[i] = n
		}

		session, path, err := o.openSession(false, o.sessionOptions())
		if err != nil {
			return err
		}
		return o.commitResult(session, path, session.Move(positions[0], positions[1]))
	}
	return cmd
}

func newValidateCmd(o *rootOptions) *cobra.Command {
	cmd := validate.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		res := host.ValidatePattern(args[0])
		if err := o.renderer.Result(res); err != nil {
			return err
		}
		if !res.OK {
			return errReported
		}
		return nil
	}
	return cmd
}

func newQuoteCmd(o *rootOptions) *cobra.Command {
	cmd := quote.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return o.renderer.Text(host.EscapeLiteral(args[0]))
	}
	return cmd
}

func newGenconfigCmd(o *rootOptions) *cobra.Command {
	var write bool

	cmd := genconfig.NewCommand()
	cmd.Flags().BoolVarP(&write, "write", "w", false, genconfig.MsgFlagWrite)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !write {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
			return err
		}

		path := config.DefaultPath()
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrFileWrite, genconfig.MsgErrExists, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
		}
		if err := os.WriteFile(path, []byte(config.DefaultContent()), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
		}
		return o.renderer.Message(fmt.Sprintf(genconfig.MsgWritten, path))
	}
	return cmd
}
