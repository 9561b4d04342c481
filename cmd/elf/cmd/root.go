// Package cmd wires elf-lang's three CLI modes (spec.md §6) onto cobra,
// following go-dws's cmd/dwscript/cmd/root.go shape: a persistent
// --verbose flag, a version template, and an exitWithError helper that
// keeps every failure path printing to stdout and exiting non-zero.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/eval"
	srcerrors "github.com/cwbudde/elf-lang/internal/errors"
	"github.com/cwbudde/elf-lang/internal/object"
	"github.com/cwbudde/elf-lang/internal/parser"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "elf <file>",
	Short:   "elf-lang interpreter",
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print extra diagnostics alongside normal output")
	rootCmd.SetVersionTemplate("elf {{.Version}}\n")
	rootCmd.AddCommand(tokensCmd, astCmd)
}

// Execute runs the root command, returning any error after it has already
// been reported to the user.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(message string) error {
	fmt.Printf("[Error] %s\n", message)
	os.Exit(1)
	return nil
}

// runFile implements the bare `elf <file>` mode: evaluate the program,
// let any `puts` calls print as they run, then print the final top-level
// value on its own line (spec.md §6).
func runFile(path string) error {
	src, err := readSource(path)
	if err != nil {
		return exitWithError(err.Error())
	}

	var prog *ast.Program
	if verbose {
		var diags []*srcerrors.SourceError
		prog, diags = parser.ParseProgramWithDiagnostics(src)
		for _, d := range diags {
			fmt.Printf("// parse: %s", d.FormatWithContext())
		}
	} else {
		prog, _ = parser.ParseProgram(src)
	}

	env := eval.NewGlobalEnvironment()
	result, evalErr := eval.Eval(prog, env)
	if evalErr != nil {
		return exitWithError(evalErr.Error())
	}

	printFinalValue(result)
	return nil
}

func printFinalValue(v object.Value) {
	fmt.Println(v.Repr())
}
