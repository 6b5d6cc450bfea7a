// Package testutil provides shared test helpers for config files, score files and images.
package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SetupTestConfig creates a config file pointing the word cloud client at
// wordCloudURL and the documents directory inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, wordCloudURL string) string {
	t.Helper()

	documentsDir := filepath.Join(tmpDir, "documents")
	require.NoError(t, os.MkdirAll(documentsDir, 0755))

	configContent := fmt.Sprintf(`wordcloud:
  base_url: %s
media:
  documents_directory: %s
  recording_filename: recording.m4a
  player_command: "true"
`,
		wordCloudURL,
		documentsDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteScoresFile writes scores as a YAML word cloud score file and returns its path.
func WriteScoresFile(t *testing.T, dir string, scores map[string]int) string {
	t.Helper()

	contents, err := yaml.Marshal(scores)
	require.NoError(t, err)
	path := filepath.Join(dir, "scores.yml")
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}

// PNG encodes a width x height image.
func PNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
