package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// storedEntry is the persisted shape of an Entry; created holds Unix
// milliseconds.
type storedEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Created   int64  `json:"created"`
}

// wireEntry is what we accept on read: numbers may be floats and createdAt
// is an alias for created.
type wireEntry struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Created   *float64 `json:"created"`
	CreatedAt *float64 `json:"createdAt"`
}

// MarshalSnapshot serializes the whole collection in stored order.
func MarshalSnapshot(entries []Entry) (string, error) {
	out := make([]storedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, storedEntry{
			ID:        e.ID,
			Text:      e.Text,
			Completed: e.Completed,
			Created:   e.CreatedAt.UnixMilli(),
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// UnmarshalSnapshot parses a snapshot. Anything that is not a JSON array of
// entry objects is an error. Records without an id or text, and repeated ids,
// are dropped so the result always satisfies the Entry invariants.
func UnmarshalSnapshot(s string) ([]Entry, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty snapshot")
	}
	var in []wireEntry
	if err := json.Unmarshal([]byte(s), &in); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]Entry, 0, len(in))
	for _, w := range in {
		text := NormalizeText(w.Text)
		if w.ID == "" || text == "" {
			continue
		}
		if _, dup := seen[w.ID]; dup {
			continue
		}
		seen[w.ID] = struct{}{}
		out = append(out, Entry{
			ID:        w.ID,
			Text:      text,
			Completed: w.Completed,
			CreatedAt: w.createdAt(),
		})
	}
	return out, nil
}

func (w wireEntry) createdAt() time.Time {
	ms := w.Created
	if ms == nil {
		ms = w.CreatedAt
	}
	if ms == nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(*ms))
}
