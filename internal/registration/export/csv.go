// Package export serializes registrations for spreadsheet tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"onutec/internal/registration/models"
)

// ContentType is the media type of WriteCSV output.
const ContentType = "text/csv; charset=utf-8"

// utf8BOM makes spreadsheet tools detect the encoding of accented names.
const utf8BOM = "\ufeff"

// WriteCSV writes a header row followed by one record per row.
func WriteCSV(w io.Writer, rows []models.ExportRow) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(models.ExportHeader()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName is the suggested download name for an export taken at t.
func FileName(t time.Time) string {
	return "registrations_onutec_" + t.UTC().Format("20060102_1504") + ".csv"
}
