// Package codec serializes the record set to the two portable interchange
// formats, CSV and JSON, and parses them back into normalized records.
package codec

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// columns is the fixed CSV column order; it matches the JSON field order of
// models.Record.
var columns = []string{"id", "created", "name", "tag", "phone", "email", "note", "follow", "source", "star"}

// ExportCSV renders records as CSV with a header row. Fields containing a
// comma, quote or newline are quoted with inner quotes doubled (the standard
// dialect produced by encoding/csv).
func ExportCSV(recs []models.Record) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, r := range recs {
		row := []string{
			r.Id,
			strconv.FormatInt(r.Created, 10),
			r.Name, r.Tag, r.Phone, r.Email, r.Note, r.Follow, r.Source,
			strconv.FormatBool(r.Star),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ImportCSV parses CSV text into normalized records. The first row is the
// header; columns are matched by name, unknown columns are ignored and known
// columns may appear in any order. A missing id gets a fresh one, a missing
// created defaults to the current time, star parses case-insensitively
// against "true". Both \n and \r\n line endings are accepted, as are quoted
// fields with embedded commas, quotes and newlines.
func ImportCSV(text string) ([]models.Record, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	recs := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.Record{
			Id:     cell(row, "id"),
			Name:   cell(row, "name"),
			Tag:    cell(row, "tag"),
			Phone:  cell(row, "phone"),
			Email:  cell(row, "email"),
			Note:   cell(row, "note"),
			Follow: cell(row, "follow"),
			Source: cell(row, "source"),
			Star:   strings.EqualFold(cell(row, "star"), "true"),
		}
		if v := cell(row, "created"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				rec.Created = n
			}
		}
		rec.Normalize()
		recs = append(recs, rec)
	}

	return recs, nil
}
