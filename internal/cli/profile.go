package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/SquarePack/internal/project"
	"github.com/spf13/cobra"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named settings profiles",
	}
	cmd.AddCommand(newProfileSaveCommand(a), newProfileListCommand(a))
	return cmd
}

func newProfileSaveCommand(a *app) *cobra.Command {
	var flags settingsFlags
	var description string
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the resolved settings under a name",
		Long: `Save the settings that pack would use, with any flags applied, as a
named profile.

Example:
  squarepack profile save wide --space 200 --policy area`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, auto, err := a.resolveSettings(cmd, &flags)
			if err != nil {
				return err
			}
			if auto {
				return fmt.Errorf("--space auto cannot be stored in a profile")
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			profiles, err := project.LoadProfiles(a.profilesPath)
			if err != nil {
				return err
			}
			profiles = project.UpsertProfile(profiles, project.Profile{
				Name:        args[0],
				Description: description,
				Settings:    settings,
			})
			if err := project.SaveProfiles(a.profilesPath, profiles); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved.\n", args[0])
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")
	return cmd
}

func newProfileListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := project.LoadProfiles(a.profilesPath)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles saved.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSPACE\tTRIALS\tMARGIN\tPOLICY\tALGORITHM\tDESCRIPTION")
			for _, p := range profiles {
				s := p.Settings
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
					p.Name, s.SpaceSize, s.Trials, s.Margin, s.Policy, s.Algorithm, p.Description)
			}
			return tw.Flush()
		},
	}
}
