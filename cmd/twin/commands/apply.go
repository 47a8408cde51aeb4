package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/twin/internal/app"
	"go.trai.ch/twin/internal/core/domain"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a previously written action plan",
		Long: "Apply executes the actions recorded by scan. It is a dry run by " +
			"default: pass --dry-run=false to mutate the filesystem. Files that " +
			"changed since planning are skipped, never touched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planPath, _ := cmd.Flags().GetString("plan")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			quarantineDir, _ := cmd.Flags().GetString("quarantine-dir")
			allowDelete, _ := cmd.Flags().GetBool("allow-delete")

			result, err := c.app.Apply(cmd.Context(), app.ApplyOptions{
				PlanPath:      planPath,
				DryRun:        dryRun,
				QuarantineDir: quarantineDir,
				AllowDelete:   allowDelete,
			})
			if err != nil {
				return err
			}
			if result.Failed > 0 {
				return domain.ErrApplyFailed
			}
			return nil
		},
	}

	cmd.Flags().StringP("plan", "p", domain.DefaultPlanFileName, "Plan file to apply")
	cmd.Flags().Bool("dry-run", true, "Log intended actions without touching the filesystem")
	cmd.Flags().StringP("quarantine-dir", "q", "", "Directory quarantined files are moved into")
	cmd.Flags().Bool("allow-delete", false, "Allow delete actions to remove files")

	return cmd
}
