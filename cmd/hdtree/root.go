package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/build"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	na = "n/a"

	envPrefix = "HDTREE"
)

var (
	// version is the current version of the tool. It is set during build
	// with -ldflags "-X main.version=...".
	version = "0.1.0"

	// Commit is the commit the binary was built from. It is set during
	// build.
	Commit = ""

	logWriter = build.NewRotatingLogWriter()

	// defaultLogDir is the default directory of the rotating log file.
	defaultLogDir = filepath.Join(btcutil.AppDataDir("hdtree", false), "logs")
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hdtree",
		Short: "hdtree derives hierarchical deterministic key trees",
		Long: `This tool derives master keys from seeds and walks the
hierarchical deterministic key tree below them, both from private and from
public keys.`,
		Version: fmt.Sprintf("v%s, commit %s", version, Commit),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			err := setupLogging(&logConfig{
				Level:          viper.GetString("loglevel"),
				Dir:            viper.GetString("logdir"),
				MaxLogFiles:    viper.GetInt("maxlogfiles"),
				MaxLogFileSize: viper.GetInt("maxlogfilesize"),
			}, logWriter)
			if err != nil {
				return fmt.Errorf("error setting up logging: %w",
					err)
			}

			log.Infof("hdtree version v%s commit %s", version, Commit)

			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().String(
		"loglevel", defaultLogLevel, "logging level for all "+
			"subsystems {trace, debug, info, warn, error, "+
			"critical, off}",
	)
	rootCmd.PersistentFlags().String(
		"logdir", defaultLogDir, "directory to write the rotating "+
			"log file to; leave empty to only log to stderr",
	)
	rootCmd.PersistentFlags().Int(
		"maxlogfiles", defaultMaxLogFiles, "maximum number of "+
			"rolled log files to keep",
	)
	rootCmd.PersistentFlags().Int(
		"maxlogfilesize", defaultMaxLogFileSize, "maximum size of a "+
			"log file in MB before it is rolled",
	)

	// Bind flags to viper, every flag can also be set through an
	// HDTREE_ prefixed environment variable.
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.Errorf("error binding flags: %v", err)
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		newGenMasterCommand(),
		newDeriveKeyCommand(),
		newDerivePubCommand(),
		newVerifyCommand(),
		newDocCommand(),
	)

	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	err := newRootCommand().ExecuteContext(ctx)

	// The log file is closed on every exit path, failed commands included.
	if closeErr := logWriter.Close(); closeErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, closeErr)
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// commandContext returns the context of the command or a background context
// if the command is run directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd == nil || cmd.Context() == nil {
		return context.Background()
	}

	return cmd.Context()
}
