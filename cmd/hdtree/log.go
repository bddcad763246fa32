package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog/v2"
	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/lightningnetwork/lnd/build"
)

const (
	// Subsystem is the logging code of the command line tool.
	Subsystem = "HDTR"

	defaultLogFilename    = "hdtree.log"
	defaultLogLevel       = "info"
	defaultMaxLogFiles    = 3
	defaultMaxLogFileSize = 10
)

// log is the logger of the command line tool. It stays disabled until
// setupLogging is called.
var log btclog.Logger = btclog.Disabled

// logConfig holds the logging options of the root command.
type logConfig struct {
	Level          string
	Dir            string
	MaxLogFiles    int
	MaxLogFileSize int
}

// setupLogging creates the loggers of the tool and of the hdkey package. Log
// output goes to stderr and, if a log directory is configured, to the
// rotating log writer.
func setupLogging(cfg *logConfig, logWriter *build.RotatingLogWriter) error {
	level, ok := btclog.LevelFromString(cfg.Level)
	if !ok {
		return fmt.Errorf("invalid log level: %v", cfg.Level)
	}

	var output io.Writer = os.Stderr
	if cfg.Dir != "" {
		fileCfg := build.DefaultLogConfig().File
		fileCfg.MaxLogFiles = cfg.MaxLogFiles
		fileCfg.MaxLogFileSize = cfg.MaxLogFileSize

		err := logWriter.InitLogRotator(
			fileCfg, filepath.Join(cfg.Dir, defaultLogFilename),
		)
		if err != nil {
			return err
		}
		output = io.MultiWriter(os.Stderr, logWriter)
	}

	handler := btclog.NewDefaultHandler(output)
	genSubLogger := func(subsystem string) btclog.Logger {
		logger := btclog.NewSLogger(handler.SubSystem(subsystem))
		logger.SetLevel(level)

		return logger
	}

	log = build.NewSubLogger(Subsystem, genSubLogger)
	hdkey.UseLogger(build.NewSubLogger(hdkey.Subsystem, genSubLogger))

	return nil
}
