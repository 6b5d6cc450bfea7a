package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ImageRef points to an image owned by the image capture side, e.g. a file path.
// The zero value means no image.
type ImageRef string

// Entry is a single word note.
type Entry struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Detail       string    `json:"detail" yaml:"detail"`
	Image        ImageRef  `json:"image,omitempty" yaml:"image,omitempty"`
	AudioLocator string    `json:"audio_locator,omitempty" yaml:"audio_locator,omitempty"`
	LinkURL      string    `json:"link_url,omitempty" yaml:"link_url,omitempty"`
	Tags         []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Date         time.Time `json:"date" yaml:"date"`
}

// EntryOption sets optional fields on a new entry.
type EntryOption func(*Entry)

func WithImage(ref ImageRef) EntryOption {
	return func(e *Entry) {
		e.Image = ref
	}
}

func WithAudio(locator string) EntryOption {
	return func(e *Entry) {
		e.AudioLocator = locator
	}
}

func WithLink(url string) EntryOption {
	return func(e *Entry) {
		e.LinkURL = url
	}
}

// WithTags keeps the tags in the given order, duplicates included.
func WithTags(tags ...string) EntryOption {
	return func(e *Entry) {
		e.Tags = append([]string(nil), tags...)
	}
}

func WithDate(date time.Time) EntryOption {
	return func(e *Entry) {
		e.Date = date
	}
}

// NewEntry creates an entry with a fresh ID. The date is the creation time
// unless WithDate overrides it.
func NewEntry(title, detail string, opts ...EntryOption) Entry {
	e := Entry{
		ID:     uuid.NewString(),
		Title:  title,
		Detail: detail,
		Date:   time.Now(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e Entry) HasImage() bool {
	return e.Image != ""
}

func (e Entry) HasAudio() bool {
	return e.AudioLocator != ""
}

func (e Entry) HasLink() bool {
	return e.LinkURL != ""
}

// HasAnyTag reports whether at least one of the entry's tags is in selected.
func (e Entry) HasAnyTag(selected map[string]struct{}) bool {
	for _, tag := range e.Tags {
		if _, ok := selected[tag]; ok {
			return true
		}
	}
	return false
}
