package ast

import "github.com/cwbudde/elf-lang/internal/token"

// Identifier is a bare name reference, e.g. in `let x = 1` or `x + 1`.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) json() map[string]any {
	return map[string]any{"name": i.Name}
}

// IntegerLiteral is an arbitrary-precision-free integer literal. Token.Literal
// retains the source slice verbatim (underscores included); the parser only
// strips them transiently when parsing the digits into Value.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (n *IntegerLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *IntegerLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *IntegerLiteral) expressionNode()      {}
func (n *IntegerLiteral) json() map[string]any {
	return map[string]any{"value": n.Token.Literal}
}

// DecimalLiteral is a fixed/floating decimal literal. Raw keeps the original
// source slice (underscores preserved), which is what the "ast" CLI mode's
// JSON dump emits per spec.md §3/§6 — Value is only for evaluation.
type DecimalLiteral struct {
	Token token.Token
	Value float64
	Raw   string
}

func (n *DecimalLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *DecimalLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *DecimalLiteral) expressionNode()      {}
func (n *DecimalLiteral) json() map[string]any {
	return map[string]any{"value": n.Raw}
}

// StringLiteral holds the literal's decoded value (quotes stripped, escapes
// resolved).
type StringLiteral struct {
	Token token.Token
	Value string
}

func (n *StringLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *StringLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *StringLiteral) expressionNode()      {}
func (n *StringLiteral) json() map[string]any {
	return map[string]any{"value": n.Value}
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (n *BooleanLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *BooleanLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *BooleanLiteral) expressionNode()      {}
func (n *BooleanLiteral) json() map[string]any {
	return map[string]any{"value": n.Value}
}

// NilLiteral is `nil`.
type NilLiteral struct {
	Token token.Token
}

func (n *NilLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NilLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NilLiteral) expressionNode()      {}
func (n *NilLiteral) json() map[string]any {
	return map[string]any{}
}
