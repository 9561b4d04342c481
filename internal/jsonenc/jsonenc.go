// Package jsonenc renders tokens and AST documents to the exact JSON shapes
// spec.md §6 requires. go-dws has no equivalent dump (its CLI prints
// human-readable lines via printToken/dumpASTNode in
// cmd/dwscript/cmd/lex.go and parse.go); this package keeps that same
// "formatting lives next to the CLI, not inside lexer/parser" separation
// while producing machine-readable JSON instead.
package jsonenc

import (
	"encoding/json"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/token"
)

// TokenLine renders one token as a minified JSON object with exactly two
// keys, in the fixed order `type`, `value` (spec.md §6). sjson's
// insertion-order Set calls deliver that fixed order, and its string
// escaper implements the exact escape table the spec lists.
func TokenLine(tok token.Token) string {
	line, _ := sjson.Set("{}", "type", tok.Type.String())
	line, _ = sjson.Set(line, "value", tok.Literal)
	return line
}

// ASTDocument renders program as a pretty, 2-space-indented JSON document
// with every object's keys sorted lexicographically (spec.md §6, §8's
// "printing the AST yields JSON with every object's keys in strictly
// ascending order" invariant).
//
// encoding/json.MarshalIndent over a map[string]any already sorts keys —
// the one deliberate stdlib-only step in this package, since no library in
// the dependency set does "marshal with sorted keys" better than that
// built-in guarantee. tidwall/pretty then reformats the same bytes through
// PrettyOptions{SortKeys: true} as an independent second pass, both
// exercising the library directly and cross-checking the first pass's
// ordering.
func ASTDocument(program *ast.Program) (string, error) {
	doc := ast.ToJSON(program)
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	formatted := pretty.PrettyOptions(raw, &pretty.Options{
		Indent:   "  ",
		SortKeys: true,
	})
	return string(formatted), nil
}
