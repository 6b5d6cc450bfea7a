// Package editor builds new catalog entries the way the add-word form does.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/lemon/internal/catalog"
	"github.com/at-ishikawa/lemon/internal/media"
)

var ErrNoRecorder = errors.New("no recorder available")

// Draft is an entry being edited.
type Draft struct {
	Title        string
	Detail       string
	LinkURL      string
	Tags         []string
	Date         time.Time
	Image        catalog.ImageRef
	AudioLocator string

	recorder media.Recorder
}

// NewDraft opens a draft dated now. recorder may be nil when audio is unavailable.
func NewDraft(recorder media.Recorder, now func() time.Time) *Draft {
	if now == nil {
		now = time.Now
	}
	return &Draft{
		Date:     now(),
		recorder: recorder,
	}
}

// AddTag appends tag unless it is blank. Duplicates are kept.
func (d *Draft) AddTag(tag string) bool {
	if strings.TrimSpace(tag) == "" {
		return false
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// PickImage asks picker for an image. Picking nothing leaves the draft unchanged.
func (d *Draft) PickImage(ctx context.Context, picker media.ImagePicker) error {
	ref, ok, err := picker.Pick(ctx)
	if err != nil {
		return fmt.Errorf("picker.Pick > %w", err)
	}
	if ok {
		d.Image = ref
	}
	return nil
}

func (d *Draft) IsRecording() bool {
	return d.recorder != nil && d.recorder.IsRecording()
}

// StartRecording starts the recorder and remembers its locator.
// When the recorder fails to start, the draft keeps its previous recording.
func (d *Draft) StartRecording() error {
	if d.recorder == nil {
		return ErrNoRecorder
	}
	locator, err := d.recorder.Start()
	if err != nil {
		return fmt.Errorf("recorder.Start > %w", err)
	}
	d.AudioLocator = locator
	return nil
}

func (d *Draft) StopRecording() error {
	if d.recorder == nil {
		return nil
	}
	if err := d.recorder.Stop(); err != nil {
		return fmt.Errorf("recorder.Stop > %w", err)
	}
	return nil
}

// ToggleRecording mirrors the record button: it stops a running recording or starts a new one.
func (d *Draft) ToggleRecording() error {
	if d.IsRecording() {
		return d.StopRecording()
	}
	return d.StartRecording()
}

// Entry builds the catalog entry for this draft.
func (d *Draft) Entry() catalog.Entry {
	return catalog.NewEntry(d.Title, d.Detail,
		catalog.WithImage(d.Image),
		catalog.WithAudio(d.AudioLocator),
		catalog.WithLink(d.LinkURL),
		catalog.WithTags(d.Tags...),
		catalog.WithDate(d.Date),
	)
}

// Save stops any recording in progress and appends the entry to c.
func (d *Draft) Save(c *catalog.Catalog) catalog.Entry {
	if d.IsRecording() {
		if err := d.StopRecording(); err != nil {
			slog.Default().Warn("failed to stop recording before saving", "error", err)
		}
	}
	entry := d.Entry()
	c.Add(entry)
	slog.Default().Debug("entry saved", "id", entry.ID, "title", entry.Title, "tags", entry.Tags)
	return entry
}
