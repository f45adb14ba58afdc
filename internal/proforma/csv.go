package proforma

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteTableCSV writes the pro forma to disk, one row per year with the NPV
// row last. Blank cells stay empty so spreadsheet consumers see them as
// missing rather than zero.
func WriteTableCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	schema := Schema()
	header := make([]string, 0, len(schema)+1)
	header = append(header, "Year")
	for _, col := range schema {
		header = append(header, string(col))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, year := range t.Years() {
		row := make([]string, 0, len(schema)+1)
		row = append(row, strconv.Itoa(year))
		for _, col := range schema {
			row = append(row, fmtCell(t.Value(year, col)))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	npvRow := make([]string, 0, len(schema)+1)
	npvRow = append(npvRow, "NPV")
	for _, col := range schema {
		npvRow = append(npvRow, fmtCell(t.NPV(col)))
	}
	if err := w.Write(npvRow); err != nil {
		return err
	}

	return w.Error()
}

func fmtCell(v float64, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
