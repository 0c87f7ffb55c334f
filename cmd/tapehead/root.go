package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emamoah/tapehead"
	"github.com/emamoah/tapehead/internal/config"
	"github.com/emamoah/tapehead/internal/logging"
	"github.com/emamoah/tapehead/internal/repl"
	"github.com/emamoah/tapehead/internal/stream"
)

var rootCmd = &cobra.Command{
	Use:   "tapehead <file>",
	Short: "Interactive seek/read/write access to a file, device, or pipe",
	Long: `TapeHead opens a byte stream once and gives you a prompt with a
persistent cursor. Seek, read, and write against it interactively
instead of juggling offsets across dd invocations.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tapehead: error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("debug", false, "Enable debug logging of command dispatch")
	rootCmd.Flags().String("config", "", "Path to the config file (default: user config dir)")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.Flags().BoolP("read-only", "r", false, "Open the stream read-only even when writable")
}

func run(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	configPath, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	readOnly, _ := cmd.Flags().GetBool("read-only")

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.NewNop()
	if debug {
		logger = logging.New(slog.LevelDebug)
	}

	var st *stream.File
	if readOnly {
		st, err = stream.OpenReadOnly(args[0])
	} else {
		st, err = stream.Open(args[0])
	}
	if err != nil {
		return err
	}
	defer st.Close()

	sigCtx := repl.NewSignalContext(cmd.Context())
	defer sigCtx.Cancel()

	err = repl.Run(sigCtx, repl.Options{
		Path:    args[0],
		Version: tapehead.Version,
		Stream:  st,
		Config:  cfg,
		Logger:  logger,
		Color:   cfg.Color && !noColor && term.IsTerminal(int(os.Stderr.Fd())),
	})
	if sig := sigCtx.Signal(); sig != nil {
		logger.Debug("session ended by signal", "signal", sig.String())
	}
	return err
}
