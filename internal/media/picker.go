package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/lemon/internal/catalog"
	"github.com/gabriel-vasile/mimetype"
)

var ErrNotAnImage = errors.New("not an image")

// FilePicker picks an image already on disk. An empty path means the user cancelled.
type FilePicker struct {
	Path string
}

var _ ImagePicker = FilePicker{}

func (p FilePicker) Pick(ctx context.Context) (catalog.ImageRef, bool, error) {
	path := strings.TrimSpace(p.Path)
	if path == "" {
		return "", false, nil
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false, fmt.Errorf("mimetype.DetectFile > %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", false, fmt.Errorf("%w: %s is %s", ErrNotAnImage, path, mtype.String())
	}
	return catalog.ImageRef(path), true, nil
}
