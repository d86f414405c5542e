package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetrainer/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change trainer settings",
	Long: `Show or change the trainer settings file. A running trainer picks up
changes as soon as the file is written.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [field]",
	Short: "Print one field, or every field",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Change one field",
	Long: `Change one field. Booleans take true/false; playlistMode is ordered,
shuffle or random; loopMode is "no loop", loop or loop1; firstRotation and
randomRotations1 take a rotation such as y' or x2, or "" to clear it.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsCycleCmd = &cobra.Command{
	Use:       "cycle <playlistMode|loopMode>",
	Short:     "Advance a mode to its next value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(config.FieldPlaylistMode), string(config.FieldLoopMode)},
	RunE:      runSettingsCycle,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsCycleCmd, settingsResetCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	s, _, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		f, err := config.ParseField(args[0])
		if err != nil {
			return err
		}
		v, err := s.Get(f)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range config.Fields {
		v, _ := s.Get(f)
		fmt.Fprintf(w, "%s\t%s\n", f, v)
	}
	return w.Flush()
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	return updateSettings(cmd, args[0], func(s config.Settings, f config.Field) (config.Settings, error) {
		return s.Set(f, args[1])
	})
}

func runSettingsCycle(cmd *cobra.Command, args []string) error {
	return updateSettings(cmd, args[0], config.Settings.Cycle)
}

func updateSettings(cmd *cobra.Command, name string, change func(config.Settings, config.Field) (config.Settings, error)) error {
	f, err := config.ParseField(name)
	if err != nil {
		return err
	}
	s, path, err := loadSettings()
	if err != nil {
		return err
	}
	s, err = change(s, f)
	if err != nil {
		return err
	}
	if err := config.Save(path, s); err != nil {
		return err
	}
	v, _ := s.Get(f)
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", f, v)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Settings restored to defaults")
	return nil
}
