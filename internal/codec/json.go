package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clientnotes/internal/common"
	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// ExportJSON renders records as a pretty-printed JSON array with the field
// order declared on models.Record.
func ExportJSON(recs []models.Record) (string, error) {
	if recs == nil {
		recs = []models.Record{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// jsonRecord is the import DTO. Star is kept raw so non-boolean values can
// be coerced by truthiness, matching the permissive legacy format.
type jsonRecord struct {
	Id      string          `json:"id"`
	Created int64           `json:"created"`
	Name    string          `json:"name"`
	Tag     string          `json:"tag"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Note    string          `json:"note"`
	Follow  string          `json:"follow"`
	Source  string          `json:"source"`
	Star    json.RawMessage `json:"star"`
}

// ImportJSON parses a JSON array of record objects. Anything other than a
// top-level array is rejected with common.ErrInvalidFormat before any record
// is produced. Elements are normalized: missing id/created are filled in,
// missing strings default to empty, star is coerced to a boolean, unknown
// extra fields are ignored.
func ImportJSON(text string) ([]models.Record, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("%w: top-level value must be an array", common.ErrInvalidFormat)
	}

	var raw []jsonRecord
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}

	recs := make([]models.Record, 0, len(raw))
	for _, jr := range raw {
		rec := models.Record{
			Id:      jr.Id,
			Created: jr.Created,
			Name:    jr.Name,
			Tag:     jr.Tag,
			Phone:   jr.Phone,
			Email:   jr.Email,
			Note:    jr.Note,
			Follow:  jr.Follow,
			Source:  jr.Source,
			Star:    truthy(jr.Star),
		}
		rec.Normalize()
		recs = append(recs, rec)
	}

	return recs, nil
}

// truthy interprets a raw JSON value the way the legacy format did: absent,
// null, false, 0 and the empty string are false, everything else is true.
func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
