package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/elf-lang/internal/jsonenc"
	"github.com/cwbudde/elf-lang/internal/lexer"
	"github.com/cwbudde/elf-lang/internal/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "print each token as one minified JSON object per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runTokens(args[0])
	},
}

func runTokens(path string) error {
	src, err := readSource(path)
	if err != nil {
		return exitWithError(err.Error())
	}

	count := 0
	for _, tok := range lexer.All(src) {
		fmt.Println(jsonenc.TokenLine(tok))
		count++
		if tok.Type == token.EOF {
			break
		}
	}
	if verbose {
		fmt.Printf("// %d tokens\n", count)
	}
	return nil
}
