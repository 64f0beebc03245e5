package batch

import (
	"time"

	"github.com/google/uuid"
)

// Batch is one run of the batch renderer.
type Batch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Entry describes one rendered card. It never carries the roll number.
type Entry struct {
	File   string `json:"file"`
	Name   string `json:"name"`
	Digest string `json:"digest"`
	Photo  string `json:"photo"` // "supplied", "missing" or "error"
}

// New starts an empty batch.
func New(name string) *Batch {
	return &Batch{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Add records a rendered card.
func (b *Batch) Add(e Entry) {
	b.Entries = append(b.Entries, e)
}

// Degraded counts cards rendered with a placeholder instead of a photo.
func (b *Batch) Degraded() int {
	n := 0
	for _, e := range b.Entries {
		if e.Photo != "supplied" {
			n++
		}
	}
	return n
}
