// Package ui renders command output as a terminal table, plain text or JSON.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/host"
	"github.com/arthur-debert/textfilter/pkg/records"
	"github.com/pterm/pterm"
)

// Renderer writes command results in one output format
type Renderer struct {
	format Format
	out    io.Writer
	width  int
}

// NewRenderer creates a renderer writing to out. FormatAuto is resolved
// with DetectFormat.
func NewRenderer(format Format, out io.Writer) (*Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(out)
	}
	switch format {
	case FormatTerminal, FormatText, FormatJSON:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %v", format)
	}
	return &Renderer{format: format, out: out, width: 80}, nil
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// Rules renders a rule list in execution order
func (r *Renderer) Rules(recs []records.Record) error {
	if recs == nil {
		recs = []records.Record{}
	}

	switch r.format {
	case FormatJSON:
		return r.encode(recs)
	case FormatText:
		for i, rec := range recs {
			if _, err := fmt.Fprintf(r.out, "%d\t%s\t%s\t%s\t%s\t%s\n",
				i, rec.Name, rec.Source, rec.Flags, rec.Replace, toggles(rec)); err != nil {
				return err
			}
		}
		return nil
	default:
		if len(recs) == 0 {
			_, err := fmt.Fprintln(r.out, mutedStyle.Render("no rules"))
			return err
		}
		data := pterm.TableData{{"#", "Name", "Pattern", "Flags", "Replacement", "Toggles"}}
		for i, rec := range recs {
			data = append(data, []string{
				fmt.Sprint(i), rec.Name, rec.Source, rec.Flags, rec.Replace, toggles(rec),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, table)
		return err
	}
}

func toggles(rec records.Record) string {
	var parts []string
	if rec.Active {
		parts = append(parts, "active")
	} else {
		parts = append(parts, "inactive")
	}
	if rec.FilterLinks {
		parts = append(parts, "links")
	}
	return strings.Join(parts, ",")
}

// Rule renders one rule in detail
func (r *Renderer) Rule(rec records.Record) error {
	switch r.format {
	case FormatJSON:
		return r.encode(rec)
	case FormatText:
		_, err := fmt.Fprintf(r.out, "name: %s\nsource: %s\nflags: %s\nreplace: %s\nactive: %t\nfilterlinks: %t\n",
			rec.Name, rec.Source, rec.Flags, rec.Replace, rec.Active, rec.FilterLinks)
		return err
	default:
		_, err := fmt.Fprint(r.out, renderMarkdown(ruleMarkdown(rec), r.width))
		return err
	}
}

// Result renders the outcome of a rule edit
func (r *Renderer) Result(res host.Result) error {
	switch r.format {
	case FormatJSON:
		return r.encode(res)
	case FormatText:
		if res.OK {
			_, err := fmt.Fprintln(r.out, "ok")
			return err
		}
		_, err := fmt.Fprintf(r.out, "%s: %s\n", res.Code, res.Message)
		return err
	default:
		if res.OK {
			_, err := fmt.Fprintln(r.out, successStyle.Render("✓ ok"))
			return err
		}
		_, err := fmt.Fprintf(r.out, "%s %s %s\n",
			errorStyle.Render("✗"), codeStyle.Render(string(res.Code)), res.Message)
		return err
	}
}

// Text renders a plain string result such as filtered or escaped text
func (r *Renderer) Text(s string) error {
	if r.format == FormatJSON {
		return r.encode(map[string]string{"text": s})
	}
	_, err := fmt.Fprintln(r.out, s)
	return err
}

// Message renders an informational line
func (r *Renderer) Message(msg string) error {
	switch r.format {
	case FormatJSON:
		return r.encode(map[string]string{"message": msg})
	case FormatText:
		_, err := fmt.Fprintln(r.out, msg)
		return err
	default:
		_, err := fmt.Fprintln(r.out, mutedStyle.Render(msg))
		return err
	}
}

// Error renders err, including its code when it has one
func (r *Renderer) Error(err error) error {
	code := errors.GetErrorCode(err)
	switch r.format {
	case FormatJSON:
		return r.encode(map[string]string{"error": errors.Message(err), "code": string(code)})
	case FormatText:
		_, werr := fmt.Fprintf(r.out, "Error: %v\n", err)
		return werr
	default:
		if code == "" {
			_, werr := fmt.Fprintf(r.out, "%s %s\n", errorStyle.Render("Error:"), err)
			return werr
		}
		_, werr := fmt.Fprintf(r.out, "%s %s %s\n",
			errorStyle.Render("Error:"), codeStyle.Render(string(code)), errors.Message(err))
		return werr
	}
}

func (r *Renderer) encode(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
