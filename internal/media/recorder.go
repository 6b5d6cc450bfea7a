package media

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

const DefaultRecordingFilename = "recording.m4a"

var ErrRecordingStart = errors.New("failed to start recording")

// SlotRecorder always records to the same file, so a new recording
// replaces the previous one.
type SlotRecorder struct {
	device  Device
	path    string
	capture Capture
}

var _ Recorder = (*SlotRecorder)(nil)

func NewSlotRecorder(device Device, documentsDir, filename string) *SlotRecorder {
	if filename == "" {
		filename = DefaultRecordingFilename
	}
	return &SlotRecorder{
		device: device,
		path:   filepath.Join(documentsDir, filename),
	}
}

// Locator returns where recordings are written.
func (r *SlotRecorder) Locator() string {
	return r.path
}

// Start begins a new recording. A recording already in progress is stopped first.
// On failure the recorder is left idle.
func (r *SlotRecorder) Start() (string, error) {
	if r.capture != nil {
		if err := r.Stop(); err != nil {
			slog.Default().Warn("failed to stop the previous recording", "path", r.path, "error", err)
		}
	}

	capture, err := r.device.Open(r.path)
	if err != nil {
		r.capture = nil
		slog.Default().Warn("recording did not start", "path", r.path, "error", err)
		return "", fmt.Errorf("%w: device.Open > %w", ErrRecordingStart, err)
	}
	r.capture = capture
	slog.Default().Debug("recording started", "path", r.path)
	return r.path, nil
}

// Stop releases the device. Stopping an idle recorder does nothing.
func (r *SlotRecorder) Stop() error {
	if r.capture == nil {
		return nil
	}
	capture := r.capture
	r.capture = nil
	if err := capture.Stop(); err != nil {
		return fmt.Errorf("capture.Stop > %w", err)
	}
	slog.Default().Debug("recording stopped", "path", r.path)
	return nil
}

func (r *SlotRecorder) IsRecording() bool {
	return r.capture != nil
}
