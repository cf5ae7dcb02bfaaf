package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

type LoggerConfig struct {
	Name          string      `json:"name"`
	LogLevel      hclog.Level `json:"logLevel"`
	JSONLogFormat bool        `json:"jsonLogFormat"`
	AppendFile    bool        `json:"appendFile"`
	LogFilePath   string      `json:"logFilePath"`
}

// NewLogger creates a hclog logger from the config. If LogFilePath is set,
// output goes both to the file and to stderr.
func NewLogger(config LoggerConfig) (hclog.Logger, error) {
	output, err := getLogOutput(config)
	if err != nil {
		return nil, err
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       config.Name,
		Level:      config.LogLevel,
		JSONFormat: config.JSONLogFormat,
		Output:     output,
	}), nil
}

func getLogOutput(config LoggerConfig) (io.Writer, error) {
	if config.LogFilePath == "" {
		return os.Stderr, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.LogFilePath), 0770); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if config.AppendFile {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	logFile, err := os.OpenFile(config.LogFilePath, flags, 0660)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return io.MultiWriter(os.Stderr, logFile), nil
}
