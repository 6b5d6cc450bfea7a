package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	WordCloud WordCloudConfig `mapstructure:"wordcloud"`
	Media     MediaConfig     `mapstructure:"media"`
}

type WordCloudConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	ScoresFile     string `mapstructure:"scores_file" validate:"omitempty,file"`
	OutputFilename string `mapstructure:"output_filename" validate:"required"`
}

type MediaConfig struct {
	DocumentsDirectory string `mapstructure:"documents_directory" validate:"required"`
	RecordingFilename  string `mapstructure:"recording_filename" validate:"required"`
	PlayerCommand      string `mapstructure:"player_command" validate:"required"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lemon")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("wordcloud.base_url", "http://127.0.0.1:5000")
	v.SetDefault("wordcloud.scores_file", "")
	v.SetDefault("wordcloud.output_filename", "wordcloud.png")
	v.SetDefault("media.documents_directory", "documents")
	v.SetDefault("media.recording_filename", "recording.m4a")
	v.SetDefault("media.player_command", "ffplay -nodisp -autoexit -loglevel quiet")

	if err := v.BindEnv("wordcloud.base_url", "LEMON_WORDCLOUD_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind LEMON_WORDCLOUD_URL environment variable: %w", err)
	}
	if err := v.BindEnv("media.player_command", "LEMON_PLAYER_COMMAND"); err != nil {
		return nil, fmt.Errorf("failed to bind LEMON_PLAYER_COMMAND environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
