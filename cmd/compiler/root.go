package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diagfmt"
	"github.com/photon-lang/photon/internal/driver"
	"github.com/photon-lang/photon/internal/version"
)

// rootCmd is the single-positional-argument driver: `compiler [path]`.
// It loads path (or a built-in example when omitted), tokenizes, parses,
// and prints the AST. version remains available as a subcommand, mirroring
// the teacher's own CLI shape.
var rootCmd = &cobra.Command{
	Use:   "compiler [path]",
	Short: "Parse a photon source file and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.Flags().String("format", "pretty", "diagnostic output format (pretty|json|sarif)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 1000, "maximum number of diagnostics to collect")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	rootCmd.Version = version.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	result, err := driver.Compile(path, maxDiagnostics)
	if err != nil {
		return err
	}

	if err := reportDiagnostics(cmd, result, format); err != nil {
		return err
	}

	if result.Builder == nil {
		// Loading or UTF-8 validation failed fatally before a parse was
		// attempted; reportDiagnostics already surfaced why.
		return fmt.Errorf("compilation failed with %d diagnostics", result.Bag.Len())
	}

	printer := ast.NewPrinter(result.Builder, result.Interner)
	prog := result.Builder.Files.Get(result.Program)
	for _, item := range prog.Items {
		fmt.Fprintln(cmd.OutOrStdout(), printer.Item(item))
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("compilation failed with %d diagnostics", result.Bag.Len())
	}
	return nil
}

func reportDiagnostics(cmd *cobra.Command, result *driver.Result, format string) error {
	if result.Bag.Len() == 0 {
		return nil
	}
	result.Bag.Sort()

	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && term.IsTerminal(int(os.Stderr.Fd())))
		opts := diagfmt.DefaultPrettyOpts()
		opts.Color = useColor
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts)
		return nil
	case "json":
		return diagfmt.JSON(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, IncludeFixes: true})
	case "sarif":
		diagfmt.Sarif(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.SarifRunMeta{ToolName: "photon", ToolVersion: version.Version})
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be pretty, json, or sarif)", format)
	}
}
