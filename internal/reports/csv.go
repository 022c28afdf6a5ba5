package reports

import (
	"bytes"
	"encoding/csv"
)

// CSV renders the document as a spreadsheet export mirroring the PDF layout:
// summary rows first, then each table with its header, separated by blank
// lines.
func (d *Document) CSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{d.Title, d.GeneratedAt.Format("02-Jan-2006")})
	w.Write([]string{""})

	for _, row := range d.Summary {
		w.Write([]string{row.Label, row.Value})
	}
	if len(d.Summary) > 0 {
		w.Write([]string{""})
	}

	for _, table := range d.Tables {
		w.Write([]string{table.Title})
		w.Write(table.Header)
		for _, row := range table.Rows {
			w.Write(row)
		}
		w.Write([]string{""})
	}

	w.Flush()
	return buf.Bytes()
}
