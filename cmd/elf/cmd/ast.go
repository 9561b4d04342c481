package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/elf-lang/internal/jsonenc"
	"github.com/cwbudde/elf-lang/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "print the Program as a single pretty-printed JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runAST(args[0])
	},
}

func runAST(path string) error {
	src, err := readSource(path)
	if err != nil {
		return exitWithError(err.Error())
	}

	prog, diags := parser.ParseProgramWithDiagnostics(src)
	doc, err := jsonenc.ASTDocument(prog)
	if err != nil {
		return exitWithError(err.Error())
	}
	fmt.Println(doc)

	if verbose {
		for _, d := range diags {
			fmt.Printf("// parse: %s", d.FormatWithContext())
		}
	}
	return nil
}
