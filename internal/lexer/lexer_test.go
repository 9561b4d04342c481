package lexer

import (
	"testing"

	"github.com/cwbudde/elf-lang/internal/token"
)

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	input := `let mut x = 1_000 + 2.5 == != > < >= <= && || |> >> | { } [ ] #{ ( ) , : ; // trailing
true false nil foo`

	want := []token.TokenType{
		token.LET, token.MUT, token.ID, token.ASSIGN,
		token.INT, token.PLUS, token.DEC,
		token.EQ, token.NOT_EQ, token.GT, token.LT, token.GT_EQ, token.LT_EQ,
		token.AND, token.OR, token.THREAD, token.COMPOSE,
		token.PIPE, token.LBRACE, token.RBRACE, token.LBRACK, token.RBRACK,
		token.HASHLBR, token.LPAREN, token.RPAREN, token.COMMA, token.COLON, token.SEMI,
		token.CMT,
		token.TRUE, token.FALSE, token.NIL, token.ID,
		token.EOF,
	}

	l := New(input)
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token[%d]: type = %s, want %s (literal %q)", i, tok.Type, wantType, tok.Literal)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input   string
		want    token.TokenType
		literal string
	}{
		{"123", token.INT, "123"},
		{"1_000", token.INT, "1_000"},
		{"1.5", token.DEC, "1.5"},
		{"1_000.25", token.DEC, "1_000.25"},
		{"1.", token.INT, "1"}, // '.' not followed by a digit is not consumed
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.want || tok.Literal != tt.literal {
			t.Errorf("New(%q).NextToken() = {%s %q}, want {%s %q}", tt.input, tok.Type, tok.Literal, tt.want, tt.literal)
		}
	}
}

func TestStringLiteralEscapesAndUnterminated(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, `"hello"`},
		{`"a\"b"`, `"a\"b"`},
		{`"unterminated`, `"unterminated`},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.STR {
			t.Fatalf("New(%q).NextToken() type = %s, want STR", tt.input, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("New(%q).NextToken().Literal = %q, want %q", tt.input, tok.Literal, tt.literal)
		}
	}
}

func TestLineCommentValue(t *testing.T) {
	l := New("// a comment\nlet")
	tok := l.NextToken()
	if tok.Type != token.CMT || tok.Literal != "// a comment" {
		t.Fatalf("comment token = {%s %q}, want {CMT %q}", tok.Type, tok.Literal, "// a comment")
	}
	next := l.NextToken()
	if next.Type != token.LET {
		t.Errorf("token after comment = %s, want LET", next.Type)
	}
}

func TestIllegalBytesAreSkipped(t *testing.T) {
	l := New("1 @ 2")
	first := l.NextToken()
	second := l.NextToken()
	if first.Type != token.INT || second.Type != token.INT {
		t.Fatalf("got %s, %s; want INT, INT (illegal '@' silently skipped)", first.Type, second.Type)
	}
}

func TestCRStripped(t *testing.T) {
	l := New("1\r\n2")
	first := l.NextToken()
	if first.Literal != "1" {
		t.Fatalf("first literal = %q, want %q", first.Literal, "1")
	}
	second := l.NextToken()
	if second.Literal != "2" {
		t.Fatalf("second literal = %q, want %q", second.Literal, "2")
	}
}

func TestLexDeterminism(t *testing.T) {
	input := `let mut x = 1_000 |> |y| y + 1 >> |z| z * 2; #{"a": 1, "b": 2}`
	first := All(input)
	second := All(input)
	if len(first) != len(second) {
		t.Fatalf("lex twice produced different lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token[%d] differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAllStopsAtEOF(t *testing.T) {
	toks := All("1 + 2")
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("last token = %s, want EOF", toks[len(toks)-1].Type)
	}
}
