// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Output formats understood by [Write].
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Write renders a result set to w in the named format. Unknown formats
// fail with [ErrUnknownFormat].
func Write(w io.Writer, format string, rs ResultSet) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return WriteText(w, rs)
	case FormatCSV:
		return WriteCSV(w, rs)
	case FormatJSON:
		return WriteJSON(w, rs)
	case FormatXLSX:
		return WriteXLSX(w, rs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText renders one block per domain with an aligned type column.
// Failure classifications are printed by name, so a TIMEOUT line is
// never confused with a valid answer that happens to be empty.
func WriteText(w io.Writer, rs ResultSet) error {
	for i, r := range rs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, r.Domain); err != nil {
			return err
		}
		for _, l := range r.Lookups {
			var err error
			switch {
			case l.Outcome.OK() && len(l.Outcome.Records) == 0:
				_, err = fmt.Fprintf(w, "  %-5s (no records)\n", l.Type)
			case l.Outcome.OK():
				_, err = fmt.Fprintf(w, "  %-5s %s\n", l.Type, strings.Join(l.Outcome.Records, ", "))
			case l.Outcome.Err != nil:
				_, err = fmt.Fprintf(w, "  %-5s %s (%v)\n", l.Type, l.Outcome.Status, l.Outcome.Err)
			default:
				_, err = fmt.Fprintf(w, "  %-5s %s\n", l.Type, l.Outcome.Status)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteCSV renders one row per domain with one column per record type.
// Success cells hold the record values joined by "; " and are empty for
// valid-but-empty answers; failure cells hold the status name, so an
// empty cell always means "answered, no records".
func WriteCSV(w io.Writer, rs ResultSet) error {
	cw := csv.NewWriter(w)

	header := []string{"domain"}
	for _, rt := range rs.Types() {
		header = append(header, rt.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rs {
		row := []string{r.Domain}
		for _, l := range r.Lookups {
			row = append(row, cellValue(l.Outcome))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonLookup and jsonResult shape the JSON export. The status field
// distinguishes failures from empty answers.
type jsonLookup struct {
	Type     string   `json:"type"`
	Status   string   `json:"status"`
	Records  []string `json:"records,omitempty"`
	Resolver string   `json:"resolver,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type jsonResult struct {
	Domain  string       `json:"domain"`
	Lookups []jsonLookup `json:"lookups"`
}

// WriteJSON renders the result set as an indented JSON array, one
// object per domain in input order.
func WriteJSON(w io.Writer, rs ResultSet) error {
	out := make([]jsonResult, len(rs))
	for i, r := range rs {
		lookups := make([]jsonLookup, len(r.Lookups))
		for j, l := range r.Lookups {
			jl := jsonLookup{
				Type:     l.Type.String(),
				Status:   l.Outcome.Status.String(),
				Records:  l.Outcome.Records,
				Resolver: string(l.Outcome.Resolver),
			}
			if l.Outcome.Err != nil {
				jl.Error = l.Outcome.Err.Error()
			}
			lookups[j] = jl
		}
		out[i] = jsonResult{Domain: r.Domain, Lookups: lookups}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteXLSX renders the result set as an XLSX workbook with the same
// cell semantics as [WriteCSV].
func WriteXLSX(w io.Writer, rs ResultSet) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []interface{}{"domain"}
	for _, rt := range rs.Types() {
		header = append(header, rt.String())
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range rs {
		row := []interface{}{r.Domain}
		for _, l := range r.Lookups {
			row = append(row, cellValue(l.Outcome))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// cellValue renders an outcome as a single table cell.
func cellValue(o Outcome) string {
	if o.OK() {
		return strings.Join(o.Records, "; ")
	}
	return o.Status.String()
}
