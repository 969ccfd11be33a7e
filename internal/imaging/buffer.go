package imaging

import (
	"context"

	"github.com/google/uuid"
)

// Attachment is an image waiting to be saved with the next report.
type Attachment struct {
	ID   string
	Data string // data URL
}

// Buffer holds the attachments for the report being written. It is cleared
// once the report is saved.
type Buffer struct {
	items []Attachment
}

func NewBuffer() *Buffer {
	return &Buffer{items: []Attachment{}}
}

// Add compresses raw and appends it under a fresh id.
func (b *Buffer) Add(ctx context.Context, raw []byte) (Attachment, error) {
	data, err := Prepare(ctx, raw, AttachmentPreset)
	if err != nil {
		return Attachment{}, err
	}
	a := Attachment{ID: uuid.NewString(), Data: data}
	b.items = append(b.items, a)
	return a, nil
}

// Remove drops the attachment with id. It reports whether one was found.
func (b *Buffer) Remove(id string) bool {
	for i, a := range b.items {
		if a.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Buffer) Get(id string) (Attachment, bool) {
	for _, a := range b.items {
		if a.ID == id {
			return a, true
		}
	}
	return Attachment{}, false
}

func (b *Buffer) Items() []Attachment { return append([]Attachment{}, b.items...) }
func (b *Buffer) Len() int            { return len(b.items) }
func (b *Buffer) Clear()              { b.items = b.items[:0] }

// DataURLs returns the attachment payloads in insertion order.
func (b *Buffer) DataURLs() []string {
	out := make([]string, len(b.items))
	for i, a := range b.items {
		out[i] = a.Data
	}
	return out
}
