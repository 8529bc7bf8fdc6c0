package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/driver"
	"ember/internal/unitmeta"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] unit.toml",
	Short: "Record a unit's lang-item bindings for dependent builds",
	Long: `Export runs lang-item collection and writes the unit's locally
declared bindings to a metadata file dependent compilations load.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("deps", "", "directory with dependency unit metadata (*.emi)")
	exportCmd.Flags().StringP("output", "o", "", "output path (default <unit>"+unitmeta.MetaExt+")")
}

func runExport(cmd *cobra.Command, args []string) error {
	depDir, err := cmd.Flags().GetString("deps")
	if err != nil {
		return fmt.Errorf("failed to get deps flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	sess := newCLISession(cmd, maxDiagnostics)
	result, err := driver.LangItemsPhase(cmd.Context(), sess, args[0], depDir)
	if err != nil {
		return err
	}

	if output == "" {
		output = result.Unit.Name + unitmeta.MetaExt
	}
	if err := driver.ExportLangItems(result, output); err != nil {
		return fmt.Errorf("write unit metadata: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filepath.Clean(output))
	}
	return nil
}
