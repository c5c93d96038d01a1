package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/itchyny/gojq"
	"github.com/spf13/pflag"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type outputFlags struct {
	format  string
	query   string
	raw     bool
	compact bool
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.format, "output", "o", formatText, "Output format: text|json")
	fs.StringVarP(&o.query, "query", "q", "", "jq expression applied to the JSON output")
	fs.BoolVarP(&o.raw, "raw-output", "r", false, "Print string results of --query without quotes")
	fs.BoolVar(&o.compact, "compact", false, "Compact JSON output")
}

func (o *outputFlags) validate() error {
	switch o.format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("invalid output format %q (use text or json)", o.format)
	}
	if o.query != "" {
		if _, err := gojq.Parse(o.query); err != nil {
			return fmt.Errorf("invalid --query: %w", err)
		}
		o.format = formatJSON
	}
	return nil
}

func (o *outputFlags) json() bool {
	return o.format == formatJSON
}

// print writes v as JSON in json mode and through text otherwise.
func (o *outputFlags) print(ctx context.Context, w io.Writer, v any, text func(io.Writer) error) error {
	if !o.json() {
		return text(w)
	}
	if o.query == "" {
		return writeJSON(w, v, o.compact)
	}
	return o.writeQuery(ctx, w, v)
}

func (o *outputFlags) writeQuery(ctx context.Context, w io.Writer, v any) error {
	query, err := gojq.Parse(o.query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	input, err := toJQValue(v)
	if err != nil {
		return err
	}

	iter := query.RunWithContext(ctx, input)
	for {
		result, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, isErr := result.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if s, isString := result.(string); isString && o.raw {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
			continue
		}
		if err := writeJSON(w, result, o.compact); err != nil {
			return err
		}
	}
}

// toJQValue converts v into the generic maps and slices gojq operates on.
func toJQValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding output: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("error encoding output: %w", err)
	}
	return out, nil
}

func writeJSON(w io.Writer, v any, compact bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
	noticeStyle = lipgloss.NewStyle().Bold(true)
)

// renderTable writes a bordered table. An empty row set prints a notice
// instead of a header-only table.
func renderTable(w io.Writer, empty string, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// renderFields writes a two-column field/value table for a single document.
func renderFields(w io.Writer, fields [][2]string) error {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f[0], f[1]})
	}
	return renderTable(w, "-", []string{"FIELD", "VALUE"}, rows)
}

func notice(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf(format, args...)))
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatFloat(f float64) string {
	if f == 0 {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
