package jsonenc

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/elf-lang/internal/parser"
	"github.com/cwbudde/elf-lang/internal/token"
)

func TestTokenLineKeyOrderAndValues(t *testing.T) {
	tok := token.Token{Type: token.PLUS, Literal: "+"}
	line := TokenLine(tok)

	if got := gjson.Get(line, "type").String(); got != "+" {
		t.Errorf("type = %q, want %q", got, "+")
	}
	if got := gjson.Get(line, "value").String(); got != "+" {
		t.Errorf("value = %q, want %q", got, "+")
	}

	// Fixed key order: type before value.
	typeIdx := strings.Index(line, `"type"`)
	valueIdx := strings.Index(line, `"value"`)
	if typeIdx < 0 || valueIdx < 0 || typeIdx > valueIdx {
		t.Errorf("expected type before value in %q", line)
	}
}

func TestTokenLineEscapesStringValue(t *testing.T) {
	tok := token.Token{Type: token.STR, Literal: `"a\nb"`}
	line := TokenLine(tok)
	if got := gjson.Get(line, "value").String(); got != `"a\nb"` {
		t.Errorf("value = %q, want %q", got, `"a\nb"`)
	}
}

func TestASTDocumentKeysSortedLexicographically(t *testing.T) {
	prog, errs := parser.ParseProgram(`let x = 1 + 2`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	doc, err := ASTDocument(prog)
	if err != nil {
		t.Fatalf("ASTDocument: %v", err)
	}

	result := gjson.Parse(doc)
	var walk func(gjson.Result)
	walk = func(r gjson.Result) {
		if r.IsObject() {
			var keys []string
			r.ForEach(func(key, value gjson.Result) bool {
				keys = append(keys, key.String())
				walk(value)
				return true
			})
			for i := 1; i < len(keys); i++ {
				if keys[i-1] >= keys[i] {
					t.Errorf("keys not strictly ascending: %v", keys)
					break
				}
			}
			return
		}
		if r.IsArray() {
			r.ForEach(func(_, value gjson.Result) bool {
				walk(value)
				return true
			})
		}
	}
	walk(result)
}

func TestASTDocumentContainsExpectedFields(t *testing.T) {
	prog, errs := parser.ParseProgram(`let x = 1`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	doc, err := ASTDocument(prog)
	if err != nil {
		t.Fatalf("ASTDocument: %v", err)
	}
	stmtType := gjson.Get(doc, "statements.0.type").String()
	if stmtType != "Expression" {
		t.Errorf("statements.0.type = %q, want %q", stmtType, "Expression")
	}
	letType := gjson.Get(doc, "statements.0.value.type").String()
	if letType != "Let" {
		t.Errorf("statements.0.value.type = %q, want %q", letType, "Let")
	}
	// name is a nested Identifier node, not a bare string.
	nameType := gjson.Get(doc, "statements.0.value.name.type").String()
	if nameType != "Identifier" {
		t.Errorf("statements.0.value.name.type = %q, want %q", nameType, "Identifier")
	}
	name := gjson.Get(doc, "statements.0.value.name.name").String()
	if name != "x" {
		t.Errorf("statements.0.value.name.name = %q, want %q", name, "x")
	}
}
