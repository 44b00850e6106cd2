package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/screenstack"
	"github.com/aretw0/screenstack/internal/logging"
	"github.com/aretw0/screenstack/internal/presentation/graph"
	"github.com/aretw0/screenstack/internal/presentation/tui"
	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/menu"
	"github.com/aretw0/screenstack/pkg/navigation"
	"github.com/aretw0/screenstack/pkg/observability"
	"github.com/aretw0/screenstack/pkg/terminal"
	"github.com/prometheus/client_golang/prometheus"
)

//go:embed demo.yaml
var demoMenu []byte

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	MenuPath    string         // empty runs the built-in demo
	Delay       *time.Duration // overrides the menu's animation delay
	Debug       bool
	Plain       bool // no markdown rendering, colours or banner
	NoBanner    bool
	MetricsAddr string
	TracePath   string // writes a Mermaid diagram of the visited screens after the session

	// Nil streams default to the process stdio.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// LoadMenu loads the menu file at path, or the built-in demo when path is empty.
func LoadMenu(path string) (*menu.Definition, error) {
	if path == "" {
		return menu.Parse(demoMenu)
	}
	return menu.Load(path)
}

// RunSession loads the menu and runs one interactive session.
func RunSession(ctx context.Context, opts RunOptions) error {
	in, out, errOut := streams(opts)
	logger := createLogger(opts.Debug, errOut)

	def, err := LoadMenu(opts.MenuPath)
	if err != nil {
		return fmt.Errorf("error loading menu: %w", err)
	}
	if opts.Delay != nil {
		def.AnimationDelay = max(*opts.Delay, 0)
	}

	plain := opts.Plain || !isStdout(out)
	var stackOpts []navigation.Option
	consoleOpts := []terminal.ConsoleOption{terminal.WithLogger(logger)}
	if !plain {
		stackOpts = append(stackOpts, navigation.WithHeader(tui.StyledHeader(out)))
		consoleOpts = append(consoleOpts, terminal.WithRenderer(tui.NewRenderer()))
	}

	stack, err := menu.Build(def, stackOpts...)
	if err != nil {
		return fmt.Errorf("error building menu: %w", err)
	}

	hooks := []domain.LifecycleHooks{logging.DebugHooks(logger)}
	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("error registering metrics: %w", err)
		}
		hooks = append(hooks, metrics.Hooks())

		srv := startMetricsServer(opts.MetricsAddr, reg, logger)
		defer shutdown(srv, logger)
	}

	var trace *graph.Trace
	if opts.TracePath != "" {
		trace = &graph.Trace{}
		hooks = append(hooks, trace.Hooks())
	}

	if !plain && !opts.NoBanner {
		tui.PrintBanner(out, screenstack.Version)
	}

	app := screenstack.New(stack,
		screenstack.WithTerminal(terminal.NewConsole(in, out, consoleOpts...)),
		screenstack.WithLogger(logger),
		screenstack.WithLifecycleHooks(domain.ComposeHooks(hooks...)),
	)

	logger.Info("Session Started", "menu", menuLabel(opts.MenuPath), "screens", len(def.Screens))
	app.Run(ctx)
	logger.Info("Session Finished", "depth", stack.Len())

	if trace != nil {
		if err := os.WriteFile(opts.TracePath, []byte(graph.GenerateMermaid(def, trace.Overlay())), 0o644); err != nil {
			return fmt.Errorf("error writing trace: %w", err)
		}
	}
	return nil
}

// ValidateMenu loads the menu at path and reports every problem found.
func ValidateMenu(path string) error {
	_, err := LoadMenu(path)
	return err
}

func streams(opts RunOptions) (io.Reader, io.Writer, io.Writer) {
	in, out, errOut := opts.In, opts.Out, opts.Err
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return in, out, errOut
}

// isStdout reports whether w is an interactive stdout.
func isStdout(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && terminal.IsInteractive(f)
}

// createLogger configures the application logger.
// In debug mode it writes to errOut, keeping the session output clean.
func createLogger(debug bool, errOut io.Writer) *slog.Logger {
	if debug {
		return logging.NewTo(errOut, slog.LevelDebug)
	}
	return logging.NewNop()
}

func menuLabel(path string) string {
	if path == "" {
		return "demo"
	}
	return path
}

func startMetricsServer(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           observability.Router(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting metrics server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	return srv
}

func shutdown(srv *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown", "err", err)
	}
}
