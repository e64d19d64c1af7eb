// mol2props reads a multi-molecule MOL2 file, splits it in records, parses them and
// checks them with the native toolkit. It writes a JSON report of the failed records.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/rmera/mol2props/internal/config"
	"github.com/rmera/mol2props/sanitize"
)

// version can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

const (
	exitOK      = 0
	exitFailed  = 1 //at least one record failed
	exitTrouble = 2 //usage, configuration or I/O errors
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] input.mol2[.gz|.zst|.sz]\n", fs.Name())
		fs.PrintDefaults()
	}
}

func newLogger(out io.Writer) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{ReportTimestamp: true, Prefix: "mol2props"})
	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color("#FF0000"))
	logger.SetStyles(styles)
	return logger
}

func summary(rep *sanitize.Report) string {
	status := okStyle.Render("OK")
	if !rep.OK() {
		status = failStyle.Render("FAILED")
	}
	s := fmt.Sprintf("%s %s: %d blocks, %d parsed, %d passed, %d failed", status, rep.File, rep.Blocks, rep.Parsed, rep.Passed, len(rep.Failures))
	if rep.Aborted {
		s += mutedStyle.Render(" (aborted at the first failure)")
	}
	return s
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the program with the command line arguments args (without the program name)
// and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mol2props", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "path to a JSON config file (optional, default "+config.DefaultPath+")")
	jsonFlag := fs.String("json", "", "write the JSON report to this file, - for stdout")
	failFast := fs.Bool("failfast", false, "stop at the first record that fails")
	keepCommas := fs.Bool("keep-commas", false, "don't remove commas from the records")
	startFlag := fs.String("start", "", "start marker of a record")
	endFlag := fs.String("end", "", "end marker of a record")
	orphansFlag := fs.String("orphans", "", "what to do with end markers outside a record: block, skip or reject")
	verbose := fs.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := fs.Bool("version", false, "print version and exit")
	fs.Usage = usage(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitTrouble
	}

	if *versionFlag {
		fmt.Fprintln(stdout, "mol2props", version)
		return exitOK
	}
	logger := newLogger(stderr)

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("unable to load config", "err", err)
		return exitTrouble
	}
	// flags override config when provided
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		fs.Usage()
		return exitTrouble
	}
	if cfg.Input == "" {
		fs.Usage()
		return exitTrouble
	}
	if *jsonFlag != "" {
		cfg.ReportJSON = *jsonFlag
	}
	if *failFast {
		cfg.FailFast = true
	}
	if *keepCommas {
		cfg.KeepCommas = true
	}
	if *startFlag != "" {
		cfg.StartMarker = *startFlag
	}
	if *endFlag != "" {
		cfg.EndMarker = *endFlag
	}
	if *orphansFlag != "" {
		cfg.Orphans = *orphansFlag
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Warn("log_file could not be opened; logging to stderr only", "path", cfg.LogFile, "err", err)
		} else {
			defer f.Close()
			logger.SetOutput(io.MultiWriter(stderr, f))
		}
	}
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		level, ok := cfg.Level()
		logger.SetLevel(level)
		if !ok {
			logger.Warn("unknown log_level in config, defaulting to info", "provided", cfg.LogLevel)
		}
	}
	logger.Debug("loaded config", "config", fmt.Sprintf("%+v", *cfg))

	opts, err := cfg.SegmentOptions()
	if err != nil {
		logger.Error("bad segmentation options", "err", err)
		return exitTrouble
	}
	opts.Log = logger

	D := sanitize.NewDriver(sanitize.Native{Log: logger})
	D.FailFast = cfg.FailFast
	D.Log = logger
	rep, err := D.ProcessFile(cfg.Input, opts)
	if err != nil {
		logger.Error("unable to process input", "file", cfg.Input, "err", err)
		if rep == nil {
			return exitTrouble
		}
	}
	for _, f := range rep.Failures {
		logger.Warn("record failed", "index", f.Index, "name", f.Name, "lines", fmt.Sprintf("%d-%d", f.FirstLine, f.LastLine), "stage", f.Stage, "err", f.Message)
	}
	if cfg.ReportJSON != "" {
		if err := writeReport(rep, cfg.ReportJSON, stdout); err != nil {
			logger.Error("unable to write report", "path", cfg.ReportJSON, "err", err)
			return exitTrouble
		}
	}
	fmt.Fprintln(stderr, summary(rep))
	switch {
	case err != nil:
		return exitTrouble
	case !rep.OK():
		return exitFailed
	}
	return exitOK
}

func writeReport(rep *sanitize.Report, path string, stdout io.Writer) error {
	if path == "-" {
		return rep.Send(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rep.Send(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
