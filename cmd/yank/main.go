package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/yank/internal/app"
	"github.com/renato0307/yank/internal/clipboard"
	"github.com/renato0307/yank/internal/config"
	"github.com/renato0307/yank/internal/copystatus"
	"github.com/renato0307/yank/internal/logging"
	"github.com/renato0307/yank/internal/ui"
)

// newWriter builds the clipboard writer; swapped in tests
var newWriter = func(backend clipboard.Backend, out io.Writer) clipboard.Writer {
	return clipboard.New(backend, out)
}

// runProgram starts the TUI on out; swapped in tests
var runProgram = func(model tea.Model, out io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out)).Run()
	return err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	fs := flag.NewFlagSet("yank", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFlag := fs.String("config", "", "Path to config file (default: "+config.DefaultPath()+")")
	textFlag := fs.String("text", "", "Default text to copy (use - to read stdin)")
	resetFlag := fs.String("reset-after", "", "Reset the copied status after this duration (e.g. 2s, 0 to never reset)")
	mimeFlag := fs.String("mime-type", "", "MIME type to copy as (text/plain, text/html)")
	debugFlag := fs.Bool("debug", false, "Log clipboard writes")
	backendFlag := fs.String("backend", "", "Clipboard backend (auto, system, osc52)")
	themeFlag := fs.String("theme", "", "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	onceFlag := fs.Bool("once", false, "Copy the default text and exit without starting the UI")
	logFileFlag := fs.String("log-file", "", "Write logs to this file")
	logLevelFlag := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormatFlag := fs.String("log-format", "", "Log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Flags set on the command line override the config file
	textFromStdin := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.DefaultContent = *textFlag
			textFromStdin = *textFlag == "-"
		case "reset-after":
			cfg.ResetAfter = *resetFlag
		case "mime-type":
			cfg.MimeType = *mimeFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "backend":
			cfg.Backend = *backendFlag
		case "theme":
			cfg.Theme = *themeFlag
		case "log-file":
			cfg.Log.File = *logFileFlag
		case "log-level":
			cfg.Log.Level = *logLevelFlag
		case "log-format":
			cfg.Log.Format = *logFormatFlag
		}
	})

	// Only "-text -" reads stdin; a "-" in the config file is literal text
	if textFromStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read stdin: %v\n", err)
			return 1
		}
		cfg.DefaultContent = string(data)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := logging.Init(cfg.LoggingConfig()); err != nil {
		fmt.Fprintf(stderr, "Error initializing logging: %v\n", err)
		return 1
	}
	defer logging.Shutdown()

	backend, _ := clipboard.ParseBackend(cfg.Backend)
	opts, _ := cfg.ControllerOptions()
	logging.Info("starting yank",
		"backend", string(backend),
		"reset_after", opts.ResetAfter.String(),
		"snippets", len(cfg.Snippets),
		"once", *onceFlag,
	)

	// The renderer and OSC52 share stdout; Terminal keeps their writes apart
	out := clipboard.NewTerminal(os.Stdout)

	if *onceFlag {
		return copyOnce(newWriter(backend, out), cfg.DefaultContent, opts, stderr)
	}

	ctrl := copystatus.NewController(newWriter(backend, out), cfg.DefaultContent, opts)
	model := app.NewModel(app.NewAppContext(ui.GetTheme(cfg.Theme), ctrl, cfg.Snippets))
	defer model.Unmount()

	if err := runProgram(model, out); err != nil {
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}

// copyOnce triggers a single copy and reports failure through the exit code
func copyOnce(w clipboard.Writer, text string, opts copystatus.Options, stderr io.Writer) int {
	if text == "" {
		fmt.Fprintln(stderr, "Error: nothing to copy (set -text or defaultContent)")
		return 1
	}

	// The reset timer is irrelevant for a single copy
	opts.ResetAfter = 0
	ctrl := copystatus.NewController(w, text, opts)
	defer ctrl.Close()

	code := 0
	ctrl.Trigger("", func(err error) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		code = 1
	})
	return code
}
