package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/algset"
	"github.com/SeamusWaldron/cubetrainer/internal/storage"
)

var (
	setsAddFile   string
	setsAddPreset string
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage alg sets",
}

var setsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Import an alg set",
	Long: `Import an alg set from a file (or stdin with --file -) or from a built-in
preset. Each line is "name, moves[, solved state]", for example:

  T, R U R' U' R' F R2 U' R' U' R U R' F'
  FR pair, (U R U' R'), F2LFR | CROSS

Examples:
  cubetrainer sets add --preset PLL
  cubetrainer sets add "My OLLs" --file olls.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetsAdd,
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored alg sets",
	Args:  cobra.NoArgs,
	RunE:  runSetsList,
}

var setsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a set in import format",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetsShow,
}

var setsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a set and its statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetsDelete,
}

var setsPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in presets",
	Args:  cobra.NoArgs,
	RunE:  runSetsPresets,
}

func init() {
	rootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsAddCmd, setsListCmd, setsShowCmd, setsDeleteCmd, setsPresetsCmd)

	setsAddCmd.Flags().StringVarP(&setsAddFile, "file", "f", "", "File to import (- for stdin)")
	setsAddCmd.Flags().StringVar(&setsAddPreset, "preset", "", "Built-in preset to import")
}

func runSetsAdd(cmd *cobra.Command, args []string) error {
	var set cubetrainer.AlgSet
	var err error

	switch {
	case setsAddPreset != "" && setsAddFile != "":
		return fmt.Errorf("use either --file or --preset, not both")
	case setsAddPreset != "":
		set, err = algset.LoadPreset(setsAddPreset)
		if err == nil && len(args) == 1 {
			set.Name, err = algset.ValidateName(args[0])
		}
	case setsAddFile != "":
		if len(args) == 0 {
			return fmt.Errorf("a set name is required with --file")
		}
		var text []byte
		text, err = readInput(cmd.InOrStdin(), setsAddFile)
		if err == nil {
			set, err = algset.Parse(args[0], string(text))
		}
	default:
		return fmt.Errorf("specify --file or --preset")
	}
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewAlgSetRepository(db).Create(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q with %d algs\n", set.Name, set.Len())
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alg list: %w", err)
	}
	return data, nil
}

func runSetsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sets, err := storage.NewAlgSetRepository(db).List(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(sets) == 0 {
		fmt.Fprintln(out, "No alg sets. Add one with: cubetrainer sets add --preset PLL")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGS\tCREATED")
	for _, s := range sets {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name, s.Entries, s.CreatedAt.Local().Format("2006-01-02"))
	}
	return w.Flush()
}

func runSetsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	set, err := storage.NewAlgSetRepository(db).Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), algset.Format(set))
	return nil
}

func runSetsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewAlgSetRepository(db).Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	n, err := storage.NewStatRepository(db).DeleteAll(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q and %d solves\n", args[0], n)
	return nil
}

func runSetsPresets(cmd *cobra.Command, args []string) error {
	presets, err := algset.Presets()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGS")
	for _, p := range presets {
		set, err := algset.Parse(p.Name, p.Algs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", p.Name, set.Len())
	}
	return w.Flush()
}

// resolveSet loads a stored set. A preset name that has not been imported
// yet is imported on first use.
func resolveSet(cmd *cobra.Command, repo *storage.AlgSetRepository, name string) (cubetrainer.AlgSet, error) {
	set, err := repo.Get(cmd.Context(), name)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return cubetrainer.AlgSet{}, err
	}

	preset, perr := algset.LoadPreset(name)
	if perr != nil {
		if errors.Is(perr, algset.ErrUnknownPreset) {
			return cubetrainer.AlgSet{}, fmt.Errorf("no alg set named %q (see: cubetrainer sets list)", name)
		}
		return cubetrainer.AlgSet{}, perr
	}
	if err := repo.Create(cmd.Context(), preset); err != nil {
		return cubetrainer.AlgSet{}, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Imported preset %s\n", preset.Name)
	return preset, nil
}
