package main

import (
	"fmt"

	"github.com/at-ishikawa/lemon/internal/catalog"
	"github.com/at-ishikawa/lemon/internal/cli"
	"github.com/at-ishikawa/lemon/internal/media"
	"github.com/at-ishikawa/lemon/internal/wordcloud"
	"github.com/spf13/cobra"
)

func newSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive session to add, filter and play entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			speaker, err := media.NewCommandSpeaker(cfg.Media.PlayerCommand)
			if err != nil {
				return fmt.Errorf("media.NewCommandSpeaker > %w", err)
			}
			scores, err := wordcloud.ResolveScores(cfg.WordCloud.ScoresFile, nil)
			if err != nil {
				return fmt.Errorf("wordcloud.ResolveScores > %w", err)
			}
			client := wordcloud.NewClient(cfg.WordCloud.BaseURL)
			defer func() {
				_ = client.Close()
			}()
			device := media.NewFileDevice()

			session := cli.NewSession(cli.Options{
				Catalog:     catalog.New(),
				Recorder:    media.NewSlotRecorder(device, cfg.Media.DocumentsDirectory, cfg.Media.RecordingFilename),
				AudioSource: device,
				Player:      media.NewPlayer(speaker),
				Generator:   client,
				Scores:      scores,
				CloudPath:   wordCloudPath(cfg),
				Stdin:       cmd.InOrStdin(),
				Stdout:      cmd.OutOrStdout(),
			})

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Interactive session started!")
			_, _ = fmt.Fprintln(out, "Type 'help' for the list of commands and 'quit' to exit.")
			_, _ = fmt.Fprintln(out)
			return session.Run(cmd.Context())
		},
	}
}
