package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gnomegl/pwncheck/internal/flags"
	"github.com/gnomegl/pwncheck/pkg/batch"
	"github.com/gnomegl/pwncheck/pkg/fileutil"
	"github.com/gnomegl/pwncheck/pkg/hibp"
	"github.com/gnomegl/pwncheck/pkg/parser"
	"github.com/gnomegl/pwncheck/pkg/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmdFlags flags.CommonFlags

var checkCmd = &cobra.Command{
	Use:   "check [input-file]",
	Short: "Check a password file against the breach corpus",
	Long: `Check a password file against the breach corpus.
One password per line; the first CSV field of each row is used, so quoted
passwords containing commas are handled. A lookup failure for one password
never aborts the rest of the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	flags.AddAllFlags(checkCmd, &checkCmdFlags)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if err := ValidateInputFile(inputPath); err != nil {
		return err
	}

	entries, err := parser.NewDefaultParser().ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read password file: %w", err)
	}

	checker := hibp.NewChecker(
		hibp.WithBaseURL(viper.GetString("api_url")),
		hibp.WithUserAgent(viper.GetString("user_agent")),
		hibp.WithTimeout(time.Duration(checkCmdFlags.TimeoutSeconds)*time.Second),
	)

	// Ctrl-C stops after the current entry; whatever finished is still
	// summarized and exportable.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processor := batch.NewProcessor(checker, batch.Options{
		Delay:    time.Duration(checkCmdFlags.DelayMs) * time.Millisecond,
		Progress: progressFunc(len(entries)),
	})

	records, stats := processor.Run(ctx, entries)
	if ctx.Err() != nil {
		fmt.Fprintf(os.Stderr, "\nInterrupted after %d of %d passwords\n", stats.Total, len(entries))
	}

	summary := report.Summarize(records, stats)
	fmt.Fprintln(os.Stderr)
	if err := report.NewTextWriter(os.Stdout).WriteSummary(summary); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	if checkCmdFlags.Export || checkCmdFlags.OutputFile != "" {
		exportPath := checkCmdFlags.OutputFile
		if exportPath == "" {
			exportPath = fileutil.DefaultResultsPath(".")
		}

		if err := EnsureExportDirectory(exportPath); err != nil {
			return err
		}

		opts := report.ExportOptions{IncludePasswords: checkCmdFlags.IncludePasswords}
		if err := report.ExportCSV(exportPath, records, opts); err != nil {
			// The summary above is already complete; only the artifact failed.
			return fmt.Errorf("failed to export results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported results: %s\n", exportPath)
	}

	return nil
}

// progressFunc renders batch progress on stderr: a progress bar normally,
// plain counting lines under --quiet suppression rules.
func progressFunc(total int) batch.ProgressFunc {
	if quiet || total == 0 {
		return nil
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("checking"),
		progressbar.OptionShowCount(),
	)

	return func(index, total, breached int) {
		bar.Describe(fmt.Sprintf("checking (%d breached)", breached))
		_ = bar.Set(index)
	}
}
