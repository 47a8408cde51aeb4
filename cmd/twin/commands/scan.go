package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/twin/internal/app"
	"go.trai.ch/twin/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan for duplicate files and write an action plan",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			recursive, _ := cmd.Flags().GetBool("recursive")
			preScan, _ := cmd.Flags().GetBool("pre-scan")
			minSize, _ := cmd.Flags().GetInt64("min-size")
			extensions, _ := cmd.Flags().GetStringSlice("ext")
			ignoreDirs, _ := cmd.Flags().GetStringSlice("ignore-dir")
			ignoreFiles, _ := cmd.Flags().GetStringSlice("ignore-file")
			mode, _ := cmd.Flags().GetString("mode")
			action, _ := cmd.Flags().GetString("action")
			lexical, _ := cmd.Flags().GetBool("canonical-lexical")
			planPath, _ := cmd.Flags().GetString("plan")
			interval, _ := cmd.Flags().GetInt("progress-interval")

			return c.app.Scan(cmd.Context(), app.ScanOptions{
				Paths:                  args,
				Recursive:              recursive,
				UsePreScan:             preScan,
				MinSizeBytes:           minSize,
				SafeExtensions:         extensions,
				IgnoredDirNames:        ignoreDirs,
				IgnoredFileNames:       ignoreFiles,
				ProgressInterval:       interval,
				ExactMode:              mode,
				ActionKind:             action,
				CanonicalByLexicalPath: lexical,
				PlanPath:               planPath,
			})
		},
	}

	cmd.Flags().BoolP("recursive", "r", true, "Descend into subdirectories")
	cmd.Flags().Bool("pre-scan", false, "Count sizes in a first pass and retain only repeated sizes")
	cmd.Flags().Int64("min-size", 0, "Skip files smaller than this many bytes")
	cmd.Flags().StringSlice("ext", nil, "Only consider these extensions (with leading dot); empty allows all")
	cmd.Flags().StringSlice("ignore-dir", nil, "Directory names to skip (case-insensitive)")
	cmd.Flags().StringSlice("ignore-file", nil, "File names to skip (case-insensitive)")
	cmd.Flags().StringP("mode", "m", "", "Duplicate confirmation strategy: binary-for-pairs, hash-only or hash-verify")
	cmd.Flags().StringP("action", "a", "", "Planned action: quarantine, delete or hardlink")
	cmd.Flags().Bool("canonical-lexical", true, "Keep the case-insensitively smallest path of each group")
	cmd.Flags().StringP("plan", "o", domain.DefaultPlanFileName, "Where to write the plan file")
	cmd.Flags().Int("progress-interval", 0, "Files between progress reports (0 disables)")

	return cmd
}
