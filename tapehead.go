package tapehead

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/emamoah/tapehead/internal/config"
	"github.com/emamoah/tapehead/internal/repl"
	"github.com/emamoah/tapehead/internal/stream"
)

// Version is the release version reported by the banner and the
// version command.
const Version = "0.1.0"

// Run opens the stream at path and drives an interactive session on
// the standard streams, with settings from the user config file. It
// returns when the user quits, stdin ends, or ctx is cancelled; all
// three are clean ends.
func Run(ctx context.Context, path string) error {
	st, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	return repl.Run(ctx, repl.Options{
		Path:    path,
		Version: Version,
		Stream:  st,
		Config:  cfg,
		Color:   cfg.Color && term.IsTerminal(int(os.Stderr.Fd())),
	})
}
