package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"strings"
)

var ErrUnresolvableLocator = errors.New("audio locator cannot be resolved")

// Player resolves audio locators to local files and hands them to a Speaker.
type Player struct {
	speaker Speaker
}

var _ AudioPlayer = (*Player)(nil)

func NewPlayer(speaker Speaker) *Player {
	return &Player{speaker: speaker}
}

// Play never fails loudly: a locator that cannot be resolved or decoded is logged and skipped.
func (p *Player) Play(ctx context.Context, locator string) {
	if err := p.play(ctx, locator); err != nil {
		slog.Default().Error("failed to play the audio file", "locator", locator, "error", err)
	}
}

func (p *Player) play(ctx context.Context, locator string) error {
	path, err := ResolveLocator(locator)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("os.Stat > %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnresolvableLocator, path)
	}
	if err := p.speaker.Speak(ctx, path); err != nil {
		return fmt.Errorf("speaker.Speak > %w", err)
	}
	return nil
}

// ResolveLocator turns a plain path or a file:// URL into a local path.
func ResolveLocator(locator string) (string, error) {
	if locator == "" {
		return "", fmt.Errorf("%w: empty", ErrUnresolvableLocator)
	}
	if !strings.Contains(locator, "://") {
		return locator, nil
	}

	u, err := url.Parse(locator)
	if err != nil {
		return "", fmt.Errorf("%w: url.Parse > %w", ErrUnresolvableLocator, err)
	}
	if u.Scheme != "file" || u.Path == "" {
		return "", fmt.Errorf("%w: %s", ErrUnresolvableLocator, locator)
	}
	return u.Path, nil
}

// CommandSpeaker plays audio by running an external program with the file path as last argument.
type CommandSpeaker struct {
	name string
	args []string
}

var _ Speaker = (*CommandSpeaker)(nil)

// NewCommandSpeaker parses a command line such as "ffplay -nodisp -autoexit".
func NewCommandSpeaker(commandLine string) (*CommandSpeaker, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, errors.New("player command is empty")
	}
	return &CommandSpeaker{name: fields[0], args: fields[1:]}, nil
}

func (s *CommandSpeaker) Speak(ctx context.Context, path string) error {
	args := append(append([]string(nil), s.args...), path)
	output, err := exec.CommandContext(ctx, s.name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w, output: %s", s.name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
