package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasdraft/check"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Format      string
	MinSeverity string
	Input       string
	Quiet       bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.MinSeverity, "min-severity", "info", "lowest severity to report: info, warning, or error")
	fs.StringVar(&flags.Input, "input", "", "check the document in this file ('-' for stdin) instead of the stored one")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only set the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only set the exit code")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdraft check [flags]\n\n")
		Writef(fs.Output(), "Report inconsistencies the export tolerates.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No error-level issues\n")
		Writef(fs.Output(), "  1    The document has error-level issues\n")
	}
	return fs, flags
}

// checkReport is the structured output of the check command.
type checkReport struct {
	Valid        bool          `json:"valid"        yaml:"valid"`
	ErrorCount   int           `json:"errorCount"   yaml:"errorCount"`
	WarningCount int           `json:"warningCount" yaml:"warningCount"`
	InfoCount    int           `json:"infoCount"    yaml:"infoCount"`
	Issues       []check.Issue `json:"issues"       yaml:"issues"`
}

// HandleCheck executes the check command
func HandleCheck(ctx context.Context, env *Env, args []string) error {
	fs, flags := SetupCheckFlags()
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	minSeverity, err := check.ParseSeverity(flags.MinSeverity)
	if err != nil {
		return err
	}

	doc, err := env.loadDocument(ctx, flags.Input)
	if err != nil {
		return err
	}
	result := check.Document(doc)
	issues := result.AtLeast(minSeverity)

	switch {
	case flags.Quiet:
	case flags.Format == FormatText:
		for _, issue := range issues {
			Writef(env.Stdout, "%s\n", issue)
		}
		Writef(env.Stdout, "\n%d errors, %d warnings, %d info\n", result.ErrorCount, result.WarningCount, result.InfoCount)
	default:
		report := checkReport{
			Valid:        result.Valid(),
			ErrorCount:   result.ErrorCount,
			WarningCount: result.WarningCount,
			InfoCount:    result.InfoCount,
			Issues:       issues,
		}
		if report.Issues == nil {
			report.Issues = []check.Issue{}
		}
		if err := OutputStructured(env.Stdout, report, flags.Format); err != nil {
			return err
		}
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %d errors", ErrCheckFailed, result.ErrorCount)
	}
	return nil
}
