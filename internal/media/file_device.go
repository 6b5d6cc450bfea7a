package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

var ErrNoSource = errors.New("no audio source selected")

// FileDevice "records" by copying an existing audio file into the recording
// path. It stands in for a microphone on machines without one.
type FileDevice struct {
	mu     sync.Mutex
	source string
}

var _ Device = (*FileDevice)(nil)

func NewFileDevice() *FileDevice {
	return &FileDevice{}
}

// Use selects the audio file the next Open copies from.
func (d *FileDevice) Use(source string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.source = source
}

func (d *FileDevice) Open(path string) (Capture, error) {
	d.mu.Lock()
	source := d.source
	d.mu.Unlock()
	if source == "" {
		return nil, ErrNoSource
	}

	src, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("os.MkdirAll > %w", err)
	}
	dst, err := os.Create(path)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("os.Create > %w", err)
	}

	c := &fileCapture{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		_, copyErr := io.Copy(dst, src)
		c.err = errors.Join(copyErr, src.Close(), dst.Close())
	}()
	return c, nil
}

type fileCapture struct {
	done chan struct{}
	err  error
}

// Stop waits for the copy to finish.
func (c *fileCapture) Stop() error {
	<-c.done
	return c.err
}
