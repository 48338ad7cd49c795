package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-runewidth"

	"github.com/GriffinCanCode/dfq/internal/column"
)

// Table writes a plain-text table: header row, one line per record,
// cells padded to the widest value with display-width awareness.
func Table(w io.Writer, report *Report) error {
	widths := make([]int, len(report.Columns))
	for i, col := range report.Columns {
		widths[i] = runewidth.StringWidth(col.Title)
	}
	for _, row := range report.Rows {
		for i, cell := range row.Cells {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	header := make([]string, len(report.Columns))
	for i, col := range report.Columns {
		header[i] = pad(col.Title, widths[i], col.Align)
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " ")); err != nil {
		return err
	}
	for _, row := range report.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = pad(cell, widths[i], report.Columns[i].Align)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int, align column.Align) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case column.AlignRight:
		return strings.Repeat(" ", gap) + s
	case column.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// CSV writes the report with one header row, raw values, and the given
// separator.
func CSV(w io.Writer, report *Report, separator rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = separator

	header := make([]string, len(report.Columns))
	for i, col := range report.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range report.Rows {
		fields := make([]string, len(row.Values))
		for i, v := range row.Values {
			fields[i] = csvField(v.Raw())
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvField(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprint(v)
	}
}

// JSON writes {"mounts": [...]} with name-keyed raw values per record.
func JSON(w io.Writer, report *Report) error {
	out, err := sonic.MarshalIndent(map[string]interface{}{"mounts": report.rowMaps()}, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// YAML writes the same record maps as a YAML document.
func YAML(w io.Writer, report *Report) error {
	out, err := yaml.Marshal(map[string]interface{}{"mounts": report.rowMaps()})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
