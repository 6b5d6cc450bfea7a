// Package wordcloud asks a remote service to render a word cloud from word scores.
package wordcloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "http://127.0.0.1:5000"
	generatePath   = "/generate_wordcloud"
)

var (
	ErrSerialization = errors.New("failed to serialize the word cloud request")
	ErrNetwork       = errors.New("word cloud request failed")
	ErrDecode        = errors.New("word cloud response is not an image")
)

// Generator renders a word cloud image.
type Generator interface {
	Generate(ctx context.Context, scores map[string]int) (Image, error)
}

// Image is a rendered word cloud.
type Image struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

type GenerateRequest struct {
	WordsWithScores map[string]int `json:"words_with_scores"`
}

// Client talks to the word cloud service. It never retries.
type Client struct {
	httpClient *resty.Client
}

var _ Generator = (*Client)(nil)

func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Generate posts the scores and decodes the returned image.
func (client *Client) Generate(ctx context.Context, scores map[string]int) (Image, error) {
	body, err := EncodeRequest(scores)
	if err != nil {
		return Image{}, err
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(generatePath)
	if err != nil {
		return Image{}, fmt.Errorf("%w: httpClient.Post > %w", ErrNetwork, err)
	}
	if response.IsError() {
		return Image{}, fmt.Errorf("%w: status %d", ErrNetwork, response.StatusCode())
	}

	img, err := DecodeImage(response.Bytes())
	if err != nil {
		return Image{}, err
	}
	slog.Default().Debug("word cloud generated",
		"words", len(scores),
		"mime", img.MIME,
		"width", img.Width,
		"height", img.Height,
	)
	return img, nil
}

// GenerateAsync runs Generate in the background and calls done exactly once.
// There is no cancellation beyond ctx and no de-duplication of calls.
func GenerateAsync(ctx context.Context, generator Generator, scores map[string]int, done func(Image, error)) {
	go func() {
		done(generator.Generate(ctx, scores))
	}()
}

// EncodeRequest builds the JSON body {"words_with_scores": {...}}.
func EncodeRequest(scores map[string]int) ([]byte, error) {
	if scores == nil {
		scores = map[string]int{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(GenerateRequest{WordsWithScores: scores}); err != nil {
		return nil, fmt.Errorf("%w: json.Encode > %w", ErrSerialization, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeImage checks that data is an image the standard decoders understand.
func DecodeImage(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty body", ErrDecode)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return Image{}, fmt.Errorf("%w: got %s", ErrDecode, mtype.String())
	}
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: image.DecodeConfig > %w", ErrDecode, err)
	}

	return Image{
		Data:   data,
		MIME:   mtype.String(),
		Width:  config.Width,
		Height: config.Height,
	}, nil
}
