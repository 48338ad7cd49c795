package render

import (
	"github.com/GriffinCanCode/dfq/internal/column"
	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/GriffinCanCode/dfq/internal/value"
)

// Options selects what the renderers show and how sizes are written.
type Options struct {
	Cols  []column.Col
	Units value.Units
}

// Report is the renderer-facing view of the pipeline result: resolved
// column metadata plus per-record values, enough to build any output
// format without knowing column semantics.
type Report struct {
	Columns []ColumnInfo
	Rows    []Row
}

// ColumnInfo is the resolved metadata of one selected column.
type ColumnInfo struct {
	Name  string
	Title string
	Align column.Align
}

// Row holds one record's values in column order.
type Row struct {
	Cells  []string      // formatted for the table
	Values []value.Value // typed, for structured outputs
}

// Resolve extracts and formats every selected column for every record.
func Resolve(records []*mount.Record, overlay *lustre.Data, opts Options) *Report {
	report := &Report{
		Columns: make([]ColumnInfo, len(opts.Cols)),
		Rows:    make([]Row, len(records)),
	}
	for i, col := range opts.Cols {
		report.Columns[i] = ColumnInfo{Name: col.Name(), Title: col.Title(), Align: col.Align()}
	}
	for i, rec := range records {
		row := Row{
			Cells:  make([]string, len(opts.Cols)),
			Values: make([]value.Value, len(opts.Cols)),
		}
		for j, col := range opts.Cols {
			v := col.Value(rec, overlay)
			row.Values[j] = v
			row.Cells[j] = v.Format(opts.Units)
		}
		report.Rows[i] = row
	}
	return report
}

// rowMaps builds name-keyed maps of raw values for JSON and YAML.
func (r *Report) rowMaps() []map[string]interface{} {
	rows := make([]map[string]interface{}, len(r.Rows))
	for i, row := range r.Rows {
		m := make(map[string]interface{}, len(r.Columns))
		for j, col := range r.Columns {
			m[col.Name] = row.Values[j].Raw()
		}
		rows[i] = m
	}
	return rows
}
