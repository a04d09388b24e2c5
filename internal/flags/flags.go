package flags

import "github.com/spf13/cobra"

type CommonFlags struct {
	Export           bool
	OutputFile       string
	IncludePasswords bool
	DelayMs          int
	TimeoutSeconds   int
}

func AddExportFlags(cmd *cobra.Command, flags *CommonFlags) {
	cmd.Flags().BoolVarP(&flags.Export, "export", "e", false, "Export per-password results to a CSV file")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Export file path (default: timestamped file in the current directory)")
	cmd.Flags().BoolVar(&flags.IncludePasswords, "include-passwords", false, "Include the password column for breached entries in the export")
}

func AddRateFlags(cmd *cobra.Command, flags *CommonFlags) {
	cmd.Flags().IntVar(&flags.DelayMs, "delay-ms", 100, "Minimum delay in milliseconds between new range queries")
	cmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", 10, "Timeout in seconds for a single range query")
}

func AddAllFlags(cmd *cobra.Command, flags *CommonFlags) {
	AddExportFlags(cmd, flags)
	AddRateFlags(cmd, flags)
}
