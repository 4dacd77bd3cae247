// Package csv reads and writes the page table.
//
// The table is a semicolon-delimited file with every field quoted, encoded
// in Windows-1252. Characters outside that repertoire are written as "?".
package csv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/pagegraph"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Ensure PageTable implements the table interfaces at compile time.
var (
	_ pagegraph.PageTableWriter = (*PageTable)(nil)
	_ pagegraph.PageTableReader = (*PageTable)(nil)
)

// Column names of the page table, in order.
const (
	ColumnRelativeDir = "relative_dir"
	ColumnFilename    = "filename"
	ColumnKeywords    = "keywords"
	ColumnDescription = "description"
	ColumnModule      = "module"
	ColumnTitle       = "title"
)

// Header is the header row of the page table.
var Header = []string{
	ColumnRelativeDir,
	ColumnFilename,
	ColumnKeywords,
	ColumnDescription,
	ColumnModule,
	ColumnTitle,
}

const delimiter = ';'

// PageTable encodes page records as a Windows-1252 CSV file.
type PageTable struct{}

// NewPageTable creates a new PageTable.
func NewPageTable() *PageTable {
	return &PageTable{}
}

// WritePageTable writes the header row followed by one row per record.
func (t *PageTable) WritePageTable(w io.Writer, records []*pagegraph.PageRecord) error {
	enc := transform.NewWriter(w, transform.Chain(
		runes.Map(replaceUnencodable),
		charmap.Windows1252.NewEncoder(),
	))
	bw := bufio.NewWriter(enc)

	writeRow(bw, Header)
	for _, r := range records {
		writeRow(bw, []string{r.RelativeDir, r.Filename, r.Keywords, r.Description, r.Module, r.Title})
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	return enc.Close()
}

// writeRow writes fields quoted and delimited. Write errors are sticky in
// bufio.Writer and surface on Flush.
func writeRow(w *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			_ = w.WriteByte(delimiter)
		}
		_ = w.WriteByte('"')
		_, _ = w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString("\r\n")
}

func replaceUnencodable(r rune) rune {
	if _, ok := charmap.Windows1252.EncodeRune(r); ok {
		return r
	}
	return '?'
}

// ReadPageTable reads records from a page table.
// Columns are matched by header name; unknown columns are ignored and the
// metadata columns are optional. An empty input yields no records.
func (t *PageTable) ReadPageTable(r io.Reader) ([]*pagegraph.PageRecord, error) {
	cr := csv.NewReader(charmap.Windows1252.NewDecoder().Reader(r))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, pagegraph.Errorf(pagegraph.EINVALID, "malformed page table header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColumnRelativeDir, ColumnFilename} {
		if _, ok := columns[required]; !ok {
			return nil, pagegraph.Errorf(pagegraph.EINVALID, "page table is missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		if idx, ok := columns[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	var records []*pagegraph.PageRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, pagegraph.Errorf(pagegraph.EINVALID, "malformed page table: %v", err)
		}

		records = append(records, &pagegraph.PageRecord{
			RelativeDir: field(row, ColumnRelativeDir),
			Filename:    field(row, ColumnFilename),
			Keywords:    field(row, ColumnKeywords),
			Description: field(row, ColumnDescription),
			Module:      field(row, ColumnModule),
			Title:       field(row, ColumnTitle),
		})
	}

	return records, nil
}
