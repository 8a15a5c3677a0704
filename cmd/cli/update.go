package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kcaldas/promptpack/pkg/update"
	"github.com/kcaldas/promptpack/pkg/version"
)

var checkOnly bool

// newUpdateCommand creates the update command
func newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update promptpack to the latest version",
		Long: `Update promptpack to the latest version from GitHub releases.

Examples:
  promptpack update           # Update to latest version
  promptpack update --check   # Check for updates without updating`,
		RunE: runUpdateCommand,
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Check for updates without updating")

	return cmd
}

func runUpdateCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	updater, err := update.NewUpdater()
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	if checkOnly {
		return checkForUpdates(ctx, updater)
	}

	return performUpdate(ctx, updater)
}

func checkForUpdates(ctx context.Context, updater *update.Updater) error {
	fmt.Printf("Current version: %s\n", version.GetVersion())
	fmt.Println("Checking for updates...")

	info, err := updater.Check(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	fmt.Printf("Latest version: %s\n", info.LatestVersion)

	if info.UpdateNeeded {
		fmt.Printf("A new version is available: %s → %s\n", info.CurrentVersion, info.LatestVersion)
		if info.ReleaseNotes != "" {
			fmt.Printf("\nRelease Notes:\n%s\n", info.ReleaseNotes)
		}
		fmt.Printf("\nRun 'promptpack update' to update to the latest version.\n")
	} else {
		fmt.Println("You are already using the latest version.")
	}

	return nil
}

func performUpdate(ctx context.Context, updater *update.Updater) error {
	info, err := updater.Check(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if !info.UpdateNeeded {
		fmt.Printf("You are already using the latest version (%s).\n", info.LatestVersion)
		return nil
	}

	fmt.Printf("Updating from %s to %s...\n", info.CurrentVersion, info.LatestVersion)

	if err := updater.Apply(ctx); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Printf("Successfully updated to version %s!\n", info.LatestVersion)
	return nil
}

func init() {
	RootCmd.AddCommand(newUpdateCommand())
}
