package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/at-ishikawa/lemon/internal/catalog"
	"github.com/at-ishikawa/lemon/internal/editor"
	"github.com/at-ishikawa/lemon/internal/media"
)

const dateLayout = "2006-01-02"

var (
	ErrNoAudio          = errors.New("entry has no audio")
	ErrWordCloudOffline = errors.New("word cloud is not configured")
)

func (s *Session) toggleTags(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: toggle <tag>")
	}
	tag := strings.Join(args, " ")
	if !s.selection.Contains(tag) && !slices.Contains(s.catalog.AllTags(), tag) {
		return fmt.Errorf("no entry is tagged %q", tag)
	}
	s.selection.Toggle(tag)
	s.renderList()
	return nil
}

// visible returns the entries the list screen currently shows.
func (s *Session) visible() []catalog.Entry {
	return s.catalog.Filter(s.selection.Tags())
}

// entryAt resolves a 1-based number from the list screen.
func (s *Session) entryAt(arg string) (catalog.Entry, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}
	visible := s.visible()
	if n < 1 || n > len(visible) {
		return catalog.Entry{}, fmt.Errorf("%w: %d, %d shown", catalog.ErrOutOfRange, n, len(visible))
	}
	return visible[n-1], nil
}

func (s *Session) addEntry(ctx context.Context) error {
	draft := editor.NewDraft(s.recorder, s.now)

	s.println(s.bold.Sprint("New entry"))
	var err error
	if draft.Title, err = s.readLine("Title: "); err != nil {
		return err
	}
	for {
		tag, err := s.readLine("Tag (blank to finish): ")
		if err != nil {
			return err
		}
		if !draft.AddTag(tag) {
			break
		}
	}
	if draft.Detail, err = s.readLine("Detail: "); err != nil {
		return err
	}

	imagePath, err := s.readLine("Image file (blank to skip): ")
	if err != nil {
		return err
	}
	if err := draft.PickImage(ctx, media.FilePicker{Path: strings.TrimSpace(imagePath)}); err != nil {
		s.printf("Image skipped: %v\n", err)
	}

	if s.recorder != nil && s.audioSource != nil {
		source, err := s.readLine("Record from audio file (blank to skip): ")
		if err != nil {
			return err
		}
		if source = strings.TrimSpace(source); source != "" {
			s.audioSource.Use(source)
			s.record(draft)
		}
	}

	link, err := s.readLine("URL (blank to skip): ")
	if err != nil {
		return err
	}
	draft.LinkURL = strings.TrimSpace(link)

	date, err := s.readLine(fmt.Sprintf("Date %s (blank for %s): ", dateLayout, draft.Date.Format(dateLayout)))
	if err != nil {
		return err
	}
	if date = strings.TrimSpace(date); date != "" {
		parsed, err := time.ParseInLocation(dateLayout, date, s.now().Location())
		if err != nil {
			s.printf("Date %q is not %s, keeping %s\n", date, dateLayout, draft.Date.Format(dateLayout))
		} else {
			draft.Date = parsed
		}
	}

	entry := draft.Save(s.catalog)
	s.printf("Added %s\n", s.bold.Sprint(displayTitle(entry)))
	s.renderList()
	return nil
}

// record runs one start/stop cycle of the record button.
func (s *Session) record(draft *editor.Draft) {
	if err := draft.ToggleRecording(); err != nil {
		s.printf("Recording unavailable: %v\n", err)
		return
	}
	if err := draft.ToggleRecording(); err != nil {
		s.printf("Recording may be incomplete: %v\n", err)
		return
	}
	s.printf("Recorded %s\n", draft.AudioLocator)
}

func (s *Session) showEntry(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <number>")
	}
	entry, err := s.entryAt(args[0])
	if err != nil {
		return err
	}
	s.renderDetail(entry)
	return nil
}

func (s *Session) deleteEntries(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: delete <number>...")
	}

	positions := make([]int, 0, len(args))
	for _, arg := range args {
		entry, err := s.entryAt(arg)
		if err != nil {
			return err
		}
		position := slices.IndexFunc(s.catalog.Entries(), func(e catalog.Entry) bool {
			return e.ID == entry.ID
		})
		if position < 0 {
			return fmt.Errorf("%w: %s", catalog.ErrNotFound, entry.ID)
		}
		positions = append(positions, position)
	}

	if err := s.catalog.RemoveAt(positions...); err != nil {
		return fmt.Errorf("catalog.RemoveAt > %w", err)
	}
	s.renderList()
	return nil
}

func (s *Session) playEntry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: play <number>")
	}
	entry, err := s.entryAt(args[0])
	if err != nil {
		return err
	}
	if !entry.HasAudio() {
		return fmt.Errorf("%w: %s", ErrNoAudio, displayTitle(entry))
	}
	if s.player == nil {
		return errors.New("no audio player available")
	}
	s.player.Play(ctx, entry.AudioLocator)
	return nil
}

// showWordCloud asks for a fresh image and waits for it so the terminal
// reports the result of this request. A failure keeps the previous image.
func (s *Session) showWordCloud(ctx context.Context) error {
	if s.screen == nil {
		return ErrWordCloudOffline
	}

	s.println("Generating word cloud...")
	s.screen.Request(ctx, s.scores)
	s.screen.Wait()
	s.applyPending()

	outcome, _ := s.screen.LastOutcome()
	if outcome.Err != nil {
		s.printf("Word cloud unavailable: %v\n", outcome.Err)
		if _, ok := s.screen.Current(); ok {
			s.printf("Previous word cloud kept at %s\n", s.cloudPath)
		}
		return nil
	}

	img, ok := s.screen.Current()
	if !ok {
		return nil
	}
	if s.cloudPath == "" {
		s.printf("Word cloud %dx%d %s\n", img.Width, img.Height, img.MIME)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.cloudPath), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(s.cloudPath, img.Data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	s.printf("Word cloud %dx%d %s saved to %s\n", img.Width, img.Height, img.MIME, s.cloudPath)
	return nil
}
