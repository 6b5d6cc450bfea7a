package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/at-ishikawa/lemon/internal/wordcloud"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ScoreFlag collects repeated --score word=n flags.
type ScoreFlag map[string]int

func (s *ScoreFlag) Set(val string) error {
	i := strings.LastIndex(val, "=")
	if i <= 0 {
		return fmt.Errorf("invalid score %q: want word=score", val)
	}
	word := strings.TrimSpace(val[:i])
	if word == "" {
		return fmt.Errorf("invalid score %q: empty word", val)
	}
	score, err := strconv.Atoi(strings.TrimSpace(val[i+1:]))
	if err != nil {
		return fmt.Errorf("invalid score %q: %w", val, err)
	}
	if *s == nil {
		*s = ScoreFlag{}
	}
	(*s)[word] = score
	return nil
}

func (s ScoreFlag) String() string {
	pairs := make([]string, 0, len(s))
	for word, score := range s {
		pairs = append(pairs, fmt.Sprintf("%s=%d", word, score))
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ",")
}

func (s *ScoreFlag) Type() string {
	return "word=score"
}

var (
	_ pflag.Value = (*ScoreFlag)(nil)
)

func newWordCloudCommand() *cobra.Command {
	wordCloudCommand := &cobra.Command{
		Use:   "wordcloud",
		Short: "Word cloud commands",
	}

	wordCloudCommand.AddCommand(newWordCloudGenerateCommand())

	return wordCloudCommand
}

func newWordCloudGenerateCommand() *cobra.Command {
	var (
		scoresFile string
		outputPath string
		overrides  ScoreFlag
	)
	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate a word cloud image once and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if scoresFile == "" {
				scoresFile = cfg.WordCloud.ScoresFile
			}
			if outputPath == "" {
				outputPath = wordCloudPath(cfg)
			}

			scores, err := wordcloud.ResolveScores(scoresFile, overrides)
			if err != nil {
				return fmt.Errorf("wordcloud.ResolveScores > %w", err)
			}

			client := wordcloud.NewClient(cfg.WordCloud.BaseURL)
			defer func() {
				_ = client.Close()
			}()
			img, err := client.Generate(cmd.Context(), scores)
			if err != nil {
				return fmt.Errorf("client.Generate > %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			if err := os.WriteFile(outputPath, img.Data, 0644); err != nil {
				return fmt.Errorf("os.WriteFile > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved a %dx%d %s word cloud of %d words to %s\n",
				img.Width, img.Height, img.MIME, len(scores), outputPath)
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&scoresFile, "scores", "", "YAML file mapping words to scores. Defaults to wordcloud.scores_file or the built-in sample")
	flags.Var(&overrides, "score", "word=score pair applied on top of the scores. Can be repeated")
	flags.StringVar(&outputPath, "out", "", "output image path. Defaults to <documents_directory>/<output_filename>")
	return command
}
