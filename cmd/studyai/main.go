package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"

	"github.com/csheth/studyai/internal/config"
	"github.com/csheth/studyai/internal/session"
	"github.com/csheth/studyai/internal/study"
	"github.com/csheth/studyai/internal/tui"
)

var errNoText = errors.New("no text to process")

type options struct {
	mode        string
	file        string
	delay       int
	noAltScreen bool
	logPath     string
	configPath  string
	print       bool
	format      string
	set         map[string]bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "studyai:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("studyai", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mode, "mode", "", "processing mode: summary, keypoints or flashcards")
	fs.StringVar(&opts.file, "file", "", "load study material from a .txt file (- reads stdin)")
	fs.IntVar(&opts.delay, "delay", 0, "simulated processing delay in milliseconds")
	fs.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	fs.StringVar(&opts.logPath, "log", "", "append debug logs to this file")
	fs.StringVar(&opts.configPath, "config", "", "path to config.yaml (defaults to $STUDYAI_CONFIG or the XDG config dir)")
	fs.BoolVar(&opts.print, "print", false, "process once and print the result instead of starting the TUI")
	fs.StringVar(&opts.format, "format", "text", "output format for -print: text or json")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	switch opts.format {
	case "text", "json":
	default:
		return opts, fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", log.LstdFlags)
	if !opts.print {
		closeLog, err := redirectLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = log.Default()
	}

	ctrl := session.NewController(study.NewSimulator(cfg.Delay()),
		session.WithLogger(logger),
		session.WithMode(cfg.Mode()),
	)
	source, err := loadInput(ctrl, opts.file, stdin)
	if err != nil {
		return err
	}

	if opts.print {
		return printResult(context.Background(), ctrl, opts.format, stdout)
	}

	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UseAltScreen() {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(tuiConfig(ctrl, source)), programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// tuiConfig hands the seeded text, mode and generator over to the TUI.
func tuiConfig(ctrl *session.Controller, source string) tui.Config {
	state := ctrl.State()
	return tui.Config{
		Generator: ctrl.Generator(),
		Mode:      state.Mode,
		Text:      state.Text,
		Source:    source,
	}
}

// resolveConfig layers the config file, STUDYAI_* variables and flags.
func resolveConfig(opts options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
		if err == nil {
			err = cfg.ApplyEnv()
		}
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}
	if opts.set["mode"] {
		mode, err := study.ParseMode(opts.mode)
		if err != nil {
			return cfg, err
		}
		cfg.DefaultMode = mode.String()
	}
	if opts.set["delay"] {
		cfg.DelayMS = opts.delay
	}
	if opts.set["log"] {
		cfg.LogFile = opts.logPath
	}
	if opts.noAltScreen {
		off := false
		cfg.AltScreen = &off
	}
	return cfg, cfg.Validate()
}

// redirectLog keeps log output off the terminal while the TUI owns it.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "studyai")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// loadInput seeds the controller from -file. Non-text files are ignored the
// same way the TUI ignores them.
func loadInput(ctrl *session.Controller, path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		ctrl.SetText(string(data))
		return "stdin", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !ctrl.LoadFromFile(path, data) {
		return "", nil
	}
	return filepath.Base(path), nil
}

func printResult(ctx context.Context, ctrl *session.Controller, format string, stdout io.Writer) error {
	if !ctrl.Process(ctx) {
		return errNoText
	}
	content := ctrl.State().Content
	if content == nil {
		return fmt.Errorf("%s generation failed", ctrl.State().Mode)
	}
	if format == "json" {
		doc, _ := study.NewDocument(content)
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	_, err := fmt.Fprintln(stdout, study.Plain(content))
	return err
}
