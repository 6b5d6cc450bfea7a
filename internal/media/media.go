// Package media wraps image capture, audio recording and audio playback.
// Entries only keep locators; the bytes behind them belong to this package's collaborators.
package media

import (
	"context"

	"github.com/at-ishikawa/lemon/internal/catalog"
)

//go:generate mockgen -source=media.go -destination=../mocks/media/mock_media.go -package=mock_media

// ImagePicker produces zero or one image reference after user interaction.
// ok is false when the user picked nothing.
type ImagePicker interface {
	Pick(ctx context.Context) (ref catalog.ImageRef, ok bool, err error)
}

// Recorder records into a single, fixed audio slot.
type Recorder interface {
	Start() (locator string, err error)
	Stop() error
	IsRecording() bool
}

// AudioPlayer plays a recording by locator. Failures are logged, not returned.
type AudioPlayer interface {
	Play(ctx context.Context, locator string)
}

// Device is the audio hardware a Recorder writes through.
type Device interface {
	Open(path string) (Capture, error)
}

// Capture is one running recording session on a Device.
type Capture interface {
	Stop() error
}

// Speaker outputs an audio file.
type Speaker interface {
	Speak(ctx context.Context, path string) error
}
