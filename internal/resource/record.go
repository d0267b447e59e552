package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
)

// Record is one flat JSON object as exchanged with the backend.
type Record map[string]any

// ID returns the record's identity rendered as a path segment.
func (r Record) ID(idField string) (string, bool) {
	v, ok := r[idField]
	if !ok || v == nil {
		return "", false
	}

	id := Text(v)

	return id, id != ""
}

func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	return maps.Clone(r)
}

// DecodeRecords reads a JSON array of records, keeping numbers exact.
func DecodeRecords(r io.Reader) ([]Record, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var records []Record
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// UnmarshalJSON keeps numbers as json.Number so identities survive a round trip.
func (r *Record) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return err //nolint:wrapcheck
	}

	*r = raw

	return nil
}
