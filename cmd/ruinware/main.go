package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danielpatrickdp/ruinware/internal/cogitator"
	"github.com/danielpatrickdp/ruinware/internal/config"
	"github.com/danielpatrickdp/ruinware/internal/engine"
	"github.com/danielpatrickdp/ruinware/internal/journal"
	"github.com/danielpatrickdp/ruinware/internal/logging"
)

// #region main
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt falls through to the default handler and kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// #endregion main

// #region root
// app carries the state shared by every subcommand.
type app struct {
	verbose   bool
	dbPath    string
	noJournal bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ruinware",
		Short: "RuinWare Sovereign Engine",
		Long: `RuinWare is a text-command engine: twist the lament configuration,
descend the labyrinth, query /status, or ask the cogitator anything else.

Run without arguments to start the interactive prompt.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runRepl,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to the journal database (overrides config)")
	root.PersistentFlags().BoolVar(&a.noJournal, "no-journal", false, "do not record turns")

	root.AddCommand(a.newInspectCmd(), a.newReplayCmd(), a.newExportCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DB.Path = a.dbPath
	}
	if flags.Changed("no-journal") && a.noJournal {
		cfg.Journal.Enabled = false
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = a.verbose
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if cfg.Log.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// #endregion root

// #region repl
func (a *app) runRepl(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	advisor := cogitator.NewClient(a.cfg.Cogitator(), a.logger)
	router := engine.New(engine.WithAdvisor(advisor), engine.WithLogger(a.logger))

	var store *journal.Store
	var session journal.Session
	if a.cfg.Journal.Enabled {
		var err error
		store, err = journal.NewStore(a.cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("open journal %s: %w", a.cfg.DB.Path, err)
		}
		defer store.Close()

		session, err = store.StartSession(advisor.Model(), router.StartedAt())
		if err != nil {
			return err
		}
		a.logger.Info("session started",
			zap.String("session_id", session.SessionID),
			zap.String("db", a.cfg.DB.Path))
	}

	printBanner(out, a.cfg)
	fmt.Fprintln(out, "Type a command (or 'quit' to exit):")

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := readLines(cmd.InOrStdin(), done)
	turnNum := 0

	for {
		if ctx.Err() != nil {
			a.logger.Info("interrupted, leaving repl", zap.Int("turns", turnNum))
			return nil
		}
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			a.logger.Info("interrupted, leaving repl", zap.Int("turns", turnNum))
			return nil
		case l, ok := <-lines:
			if !ok {
				return *scanErr
			}
			line = strings.TrimSpace(l)
		}
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		turnCtx, cancel := context.WithCancel(ctx)
		resp := router.ProcessInput(turnCtx, line)
		cancel()
		if resp.Text != "" {
			fmt.Fprintf(out, "%s\n", resp.Text)
		}

		if store == nil {
			continue
		}
		turnNum++
		err := logging.LogTurn(store.DB(), logging.TurnEntry{
			SessionID: session.SessionID,
			TurnNum:   turnNum,
			Input:     line,
			Kind:      string(resp.Kind),
			Response:  resp.Text,
			LockState: string(router.LockState()),
			Depth:     router.Depth(),
		})
		if err != nil {
			a.logger.Error("journal write failed", zap.Int("turn", turnNum), zap.Error(err))
		}
	}
}

// readLines scans r on its own goroutine so the prompt can be abandoned on
// interrupt while a read is pending. The error is valid once lines is closed.
// Closing done stops delivery.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, *error) {
	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr = scanner.Err()
	}()
	return lines, &scanErr
}

func printBanner(out io.Writer, cfg config.Config) {
	fmt.Fprintln(out, "--- RUINWARE SOVEREIGN ENGINE v3.0 INITIALIZED ---")
	fmt.Fprintln(out, "[KERNEL] Witness Baseline Loaded.")
	fmt.Fprintln(out, "[CENOBITE] Lament Configuration: UNSOLVED (Twist to begin).")
	if cfg.Ollama.Enabled {
		fmt.Fprintf(out, "[COGITATOR] Ollama Bridge: READY. (%s @ %s)\n", cfg.Ollama.Model, cfg.Ollama.URL)
	} else {
		fmt.Fprintln(out, "[COGITATOR] Ollama Bridge: DISABLED.")
	}
}

// #endregion repl
