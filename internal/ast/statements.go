package ast

import "github.com/cwbudde/elf-lang/internal/token"

// Program is the root node: the ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}
func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return p.Statements[0].Pos()
}
func (p *Program) json() map[string]any {
	return map[string]any{"statements": statementsJSON(p.Statements)}
}

// Block groups statements with their own lexical scope: an if-branch body or
// a function body.
type Block struct {
	Token      token.Token // the opening '{'
	Statements []Statement
}

func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() token.Position  { return b.Token.Pos }
func (b *Block) expressionNode()      {}
func (b *Block) json() map[string]any {
	return map[string]any{"statements": statementsJSON(b.Statements)}
}

// ExpressionStatement wraps an expression evaluated for its value (and, for
// the last statement in a block/program, yielded as the block's result).
type ExpressionStatement struct {
	Token      token.Token // the statement's first token
	Expression Expression
}

func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) json() map[string]any {
	return map[string]any{"value": ToJSON(s.Expression)}
}

// CommentStatement preserves a `//` line comment as its own statement so the
// AST dump mode can round-trip comments verbatim.
type CommentStatement struct {
	Token token.Token
	Text  string
}

func (c *CommentStatement) TokenLiteral() string { return c.Token.Literal }
func (c *CommentStatement) Pos() token.Position  { return c.Token.Pos }
func (c *CommentStatement) statementNode()       {}
func (c *CommentStatement) json() map[string]any {
	return map[string]any{"value": c.Text}
}

// LetStatement binds Name to Value's result in the current scope. Mutable
// distinguishes `let` (false) from `let mut` (true), per spec.md §4.4 —
// the two are serialized as distinct "Let"/"MutableLet" node types (see
// nodeType in ast.go) rather than a shared type with a flag, matching the
// table in spec.md §3.
//
// LetStatement is parsed in expression position (spec.md §4.2 lists `LET`
// among the prefix dispatch options), so despite its name it implements
// Expression, not Statement: a top-level `let x = 1` is an
// ExpressionStatement whose Expression field is a *LetStatement, exactly
// like any other expression statement.
type LetStatement struct {
	Token   token.Token // the 'let' token
	Name    *Identifier
	Value   Expression
	Mutable bool
}

func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) Pos() token.Position  { return s.Token.Pos }
func (s *LetStatement) expressionNode()      {}
func (s *LetStatement) json() map[string]any {
	return map[string]any{
		"name":  ToJSON(s.Name),
		"value": ToJSON(s.Value),
	}
}

func statementsJSON(stmts []Statement) []map[string]any {
	out := make([]map[string]any, len(stmts))
	for i, s := range stmts {
		out[i] = ToJSON(s)
	}
	return out
}
