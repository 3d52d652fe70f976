package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	configPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the database profiles available to the dashboard",
		RunE:  pc.run,
	}

	cmd.Flags().StringVarP(&pc.configPath, "config", "c", "dashboard.yaml", "Path to the settings file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, err := config.LoadSettings(pc.configPath)
	if err != nil {
		return err
	}

	registry, err := config.NewRegistry(settings.Database.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", settings.Database.ProfilesPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n", settings.Database.ProfilesPath)
	for _, name := range profiles {
		marker := " "
		if name == settings.Database.Profile {
			marker = "*"
		}

		p, err := registry.GetConfig(ctx, name)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (invalid: %v)\n", marker, name, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", marker, name, p.String())
	}

	return nil
}
