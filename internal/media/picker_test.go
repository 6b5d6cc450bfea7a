package media_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/lemon/internal/catalog"
	"github.com/at-ishikawa/lemon/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{
	0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00,
}

func TestFilePicker_Pick(t *testing.T) {
	tmpDir := t.TempDir()
	imagePath := filepath.Join(tmpDir, "apple.png")
	textPath := filepath.Join(tmpDir, "apple.txt")
	require.NoError(t, os.WriteFile(imagePath, pngHeader, 0644))
	require.NoError(t, os.WriteFile(textPath, []byte("just some notes"), 0644))

	tests := []struct {
		name    string
		path    string
		want    catalog.ImageRef
		wantOK  bool
		wantErr error
	}{
		{
			name:   "image file",
			path:   imagePath,
			want:   catalog.ImageRef(imagePath),
			wantOK: true,
		},
		{
			name:   "nothing picked",
			path:   "  ",
			wantOK: false,
		},
		{
			name:    "not an image",
			path:    textPath,
			wantErr: media.ErrNotAnImage,
		},
		{
			name:    "missing file",
			path:    filepath.Join(tmpDir, "missing.png"),
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := media.FilePicker{Path: tt.path}.Pick(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
