package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ember/internal/diag"
	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/langitems"
	"ember/internal/source"
	"ember/internal/unitmeta"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] unit.toml",
	Short: "Collect and verify a unit's lang items",
	Long: `Check runs lang-item collection over a unit description and the
metadata of its dependency units, reporting duplicate bindings.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("deps", "", "directory with dependency unit metadata (*.emi)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	depDir, err := cmd.Flags().GetString("deps")
	if err != nil {
		return fmt.Errorf("failed to get deps flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	sess := newCLISession(cmd, maxDiagnostics)
	result, err := driver.LangItemsPhase(cmd.Context(), sess, args[0], depDir)
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}
	printItems(cmd, result)
	return nil
}

// newCLISession builds a session that renders the bag to stderr right
// before a diagnostic abort.
func newCLISession(cmd *cobra.Command, maxDiagnostics int) *diag.Session {
	sess := diag.NewSession(maxDiagnostics)
	sess.OnFlush(func(bag *diag.Bag) {
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, bag, source.NewFileSet(), opts)
	})
	return sess
}

func printItems(cmd *cobra.Command, result *driver.PhaseResult) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	bound := 0
	result.Items.Each(func(kind langitems.LangItem, id unitmeta.DefID) {
		bound++
		origin := result.Unit.Name
		if !id.IsLocal() {
			origin = result.Store.Name(id.Unit)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind.Name(), id, origin)
	})
	w.Flush() //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d lang items bound\n", bound, langitems.ItemCount)
}
