package model

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Entry is the domain model for a todo entry.
// ID is the only identity; Text is never stored empty.
type Entry struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// NewEntry builds an active entry from already-trimmed text.
func NewEntry(id, text string, now time.Time) Entry {
	return Entry{ID: id, Text: text, CreatedAt: now}
}

// NormalizeText trims user input. An empty result means "no text".
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a base-36 millisecond timestamp followed by four random
// base-36 characters.
func NewID(now time.Time) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	for i := 0; i < 4; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}
