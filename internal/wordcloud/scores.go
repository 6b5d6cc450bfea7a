package wordcloud

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultScores is the sample mapping the word cloud screen sends.
var DefaultScores = map[string]int{
	"Python":     90,
	"Java":       80,
	"C++":        70,
	"JavaScript": 85,
	"HTML":       50,
	"CSS":        55,
	"Ruby":       60,
	"Swift":      65,
	"Kotlin":     75,
}

// LoadScores reads a YAML mapping of word to score, e.g.
//
//	Go: 10
//	Rust: 8
func LoadScores(path string) (map[string]int, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var scores map[string]int
	if err := yaml.Unmarshal(contents, &scores); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	if scores == nil {
		scores = map[string]int{}
	}
	return scores, nil
}

// ResolveScores picks the scores for a request: the file if given, the
// defaults otherwise, with overrides applied on top.
func ResolveScores(path string, overrides map[string]int) (map[string]int, error) {
	scores := maps.Clone(DefaultScores)
	if path != "" {
		loaded, err := LoadScores(path)
		if err != nil {
			return nil, err
		}
		scores = loaded
	}
	maps.Copy(scores, overrides)
	return scores, nil
}
