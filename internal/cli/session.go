// Package cli runs the interactive terminal session over a catalog.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/at-ishikawa/lemon/internal/catalog"
	"github.com/at-ishikawa/lemon/internal/media"
	"github.com/at-ishikawa/lemon/internal/wordcloud"
	"github.com/fatih/color"
)

var (
	errEnd = errors.New("end")

	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidNumber  = errors.New("invalid entry number")
)

// AudioSource chooses what the recording device captures next.
type AudioSource interface {
	Use(source string)
}

// Options wires a Session to its collaborators. Recorder, AudioSource and
// Generator may be nil, which disables recording or the word cloud.
type Options struct {
	Catalog     *catalog.Catalog
	Recorder    media.Recorder
	AudioSource AudioSource
	Player      media.AudioPlayer
	Generator   wordcloud.Generator
	Scores      map[string]int
	// CloudPath is where the displayed word cloud is written.
	CloudPath string
	Stdin     io.Reader
	Stdout    io.Writer
	Now       func() time.Time
}

// Session is the list screen, the add form, the detail view and the word
// cloud view driven by typed commands.
type Session struct {
	catalog     *catalog.Catalog
	selection   *catalog.TagSelection
	recorder    media.Recorder
	audioSource AudioSource
	player      media.AudioPlayer
	screen      *wordcloud.Screen
	queue       *wordcloud.MainQueue
	scores      map[string]int
	cloudPath   string
	now         func() time.Time

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	selected     *color.Color
	unselected   *color.Color
}

func NewSession(opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = catalog.New()
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Session{
		catalog:      opts.Catalog,
		selection:    catalog.NewTagSelection(),
		recorder:     opts.Recorder,
		audioSource:  opts.AudioSource,
		player:       opts.Player,
		scores:       opts.Scores,
		cloudPath:    opts.CloudPath,
		now:          opts.Now,
		stdinReader:  bufio.NewReader(opts.Stdin),
		stdoutWriter: opts.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		selected:     color.New(color.FgBlack, color.BgHiYellow),
		unselected:   color.New(color.FgHiBlack),
	}
	if opts.Generator != nil {
		s.queue = wordcloud.NewMainQueue(8)
		s.screen = wordcloud.NewScreen(opts.Generator, s.queue)
	}
	return s
}

// Run reads commands until quit, end of input, or an interrupt.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	s.renderList()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

		for {
			if ctx.Err() != nil {
				return
			}
			if err := s.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		s.println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session handles a single command. Command failures are reported and do not
// end the session.
func (s *Session) Session(ctx context.Context) error {
	s.applyPending()

	line, err := s.readLine("> ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	if name == "quit" || name == "exit" {
		return errEnd
	}

	if err := s.dispatch(ctx, name, args); err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		_, _ = color.New(color.FgRed).Fprintf(s.stdoutWriter, "error: %v\n", err)
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "help", "?":
		s.renderHelp()
		return nil
	case "list", "ls":
		s.renderList()
		return nil
	case "tags":
		s.renderTagBar()
		return nil
	case "toggle", "t":
		return s.toggleTags(args)
	case "clear":
		s.selection.Clear()
		s.renderList()
		return nil
	case "add", "new":
		return s.addEntry(ctx)
	case "show":
		return s.showEntry(args)
	case "delete", "rm":
		return s.deleteEntries(args)
	case "play":
		return s.playEntry(ctx, args)
	case "cloud":
		return s.showWordCloud(ctx)
	default:
		return fmt.Errorf("%w: %s (type help for the list of commands)", ErrUnknownCommand, name)
	}
}

// applyPending runs word cloud updates delivered since the last command.
func (s *Session) applyPending() {
	if s.queue != nil {
		s.queue.Drain()
	}
}

// readLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (s *Session) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.stdoutWriter, prompt)
	}
	line, err := s.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.stdoutWriter, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.stdoutWriter, format, a...)
}
