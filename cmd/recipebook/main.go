// RecipeBook: an interactive console for recording and browsing recipes.
//
// Usage:
//
//	recipebook [-verbose] [-quiet] [-log-level level] [-log-file path] [-tui] [-chime] [-samples]
//
// Flag defaults can be set through RECIPEBOOK_* environment variables or
// a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/recipebook/internal/conversation"
	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
	"github.com/hammamikhairi/recipebook/internal/speech"
	"github.com/hammamikhairi/recipebook/internal/storage"
)

// Environment variables read as flag defaults.
const (
	EnvLogLevel = "RECIPEBOOK_LOG_LEVEL"
	EnvLogFile  = "RECIPEBOOK_LOG_FILE"
	EnvTUI      = "RECIPEBOOK_TUI"
	EnvChime    = "RECIPEBOOK_CHIME"
	EnvSamples  = "RECIPEBOOK_SAMPLES"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logLevel := flag.String("log-level", envString(EnvLogLevel, "normal"), "log level: off, normal or verbose")
	logFile := flag.String("log-file", envString(EnvLogFile, ".recipebook-logs/recipebook.log"), "file to write logs to (use \"stderr\" to log to console)")
	useTUI := flag.Bool("tui", envBool(EnvTUI, false), "run inside the terminal UI instead of plain stdin/stdout")
	chime := flag.Bool("chime", envBool(EnvChime, false), "play a chime with the calorie warning")
	samples := flag.Bool("samples", envBool(EnvSamples, false), "preload the built-in sample recipes")
	flag.Parse()

	// Configure logger.
	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using normal)\n", err)
	}
	if *verbose {
		level = logger.LevelVerbose
	}
	if *quiet {
		level = logger.LevelOff
	}

	// Logs go to a file by default so the prompts stay clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" && level != logger.LevelOff {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	log := logger.New(level, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	store := storage.NewMemoryStore(log)
	parser := conversation.NewMenuParser(log)

	if *samples {
		if err := recipe.Seed(ctx, store, log); err != nil {
			log.Error("loading samples: %v", err)
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}

	var (
		console domain.Console
		printFn conversation.PrintFunc
		ui      *display.UI
		engOpts []engine.Option
	)
	if *useTUI {
		ui = display.NewUI(store)
		console, printFn = ui, ui.Printf
		engOpts = append(engOpts, engine.WithStateObserver(ui.SetState))
	} else {
		lc := conversation.NewLineConsole(os.Stdin, os.Stdout)
		console, printFn = lc, lc.Printf
	}

	// The chime wraps the text notifier when audio is available.
	var notifier domain.Notifier = conversation.NewCLINotifier(log, printFn)
	if *chime {
		player, err := speech.NewPlayer(log)
		if err != nil {
			log.Error("audio player init failed, chime disabled: %v", err)
		} else {
			notifier = speech.NewChimingNotifier(notifier, player, log)
			log.Info("calorie warning chime enabled")
		}
	}

	eng := engine.New(store, console, parser, notifier, log, engOpts...)

	var runErr error
	if ui == nil {
		runErr = eng.Run(ctx)
	} else {
		runErr = runWithUI(ctx, cancel, eng, ui, log)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("session failed: %v", runErr)
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		return 1
	}
	return 0
}

// runWithUI runs the session on a background goroutine while Bubble Tea
// owns the terminal.
func runWithUI(ctx context.Context, cancel context.CancelFunc, eng *engine.Engine, ui *display.UI, log *logger.Logger) error {
	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Ctrl+C to leave at any time."))
	fmt.Println()

	errCh := make(chan error, 1)
	go func() {
		ui.WaitReady()
		errCh <- eng.Run(ctx)
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()

	select {
	case err := <-errCh:
		return err
	case <-time.After(time.Second):
		log.Warn("session did not stop after the UI quit")
		return nil
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q is not a boolean, using %t\n", key, v, def)
		return def
	}
	return b
}
