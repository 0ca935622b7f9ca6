package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// ConfigPathEnv names a directory searched first for the config file.
	ConfigPathEnv = "JOURNAL_CONFIG_PATH"

	journalDirName = "WorkJournal"
	defaultEditor  = "nvim"
)

// Config is the explicit configuration handed to the store and the editor.
type Config interface {
	BasePath() string
	Editor() string
	LogLevel() log.Level
	Source() string
}

// LoadConfig reads .journal.yaml (optional) and JOURNAL_* env vars.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName(".journal") // .yaml is implicit
	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()

	docs, err := DocumentsDir()
	if err != nil {
		return nil, err
	}
	v.SetDefault("path", filepath.Join(docs, journalDirName))
	v.SetDefault("editor", defaultEditorCommand())
	v.SetDefault("log_level", log.WarnLevel.String())

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand path %q: %w", v.GetString("path"), err)
	}
	level, err := log.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:    path,
		Command: v.GetString("editor"),
		Level:   level,
		File:    v.ConfigFileUsed(),
	}, nil
}

// DocumentsDir is $XDG_DOCUMENTS_DIR, or ~/Documents.
func DocumentsDir() (string, error) {
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		return homedir.Expand(dir)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}

func defaultEditorCommand() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	return defaultEditor
}

type fileConfig struct {
	Path    string    `json:"path"`
	Command string    `json:"editor"`
	Level   log.Level `json:"log_level"`
	File    string    `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Editor() string {
	return f.Command
}

func (f *fileConfig) LogLevel() log.Level {
	return f.Level
}

// Source is the config file read, or "" when only defaults and env applied.
func (f *fileConfig) Source() string {
	return f.File
}
