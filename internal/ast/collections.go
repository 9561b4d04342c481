package ast

import "github.com/cwbudde/elf-lang/internal/token"

// ListLiteral is `[e1, e2, ...]`.
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (n *ListLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *ListLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *ListLiteral) expressionNode()      {}
func (n *ListLiteral) json() map[string]any {
	return map[string]any{"items": expressionsJSON(n.Elements)}
}

// SetLiteral is `{e1, e2, ...}`. Members may not themselves be Dictionary
// values (enforced at evaluation, not parse time).
type SetLiteral struct {
	Token    token.Token // the '{' token
	Elements []Expression
}

func (n *SetLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *SetLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *SetLiteral) expressionNode()      {}
func (n *SetLiteral) json() map[string]any {
	return map[string]any{"items": expressionsJSON(n.Elements)}
}

// DictPair is one `key: value` entry of a DictionaryLiteral.
type DictPair struct {
	Key   Expression
	Value Expression
}

// DictionaryLiteral is `#{k1: v1, k2: v2, ...}`. Keys may not themselves be
// Dictionary values (enforced at evaluation, not parse time).
type DictionaryLiteral struct {
	Token token.Token // the '#{' token
	Pairs []DictPair
}

func (n *DictionaryLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *DictionaryLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *DictionaryLiteral) expressionNode()      {}
func (n *DictionaryLiteral) json() map[string]any {
	items := make([]map[string]any, len(n.Pairs))
	for i, p := range n.Pairs {
		items[i] = map[string]any{"key": ToJSON(p.Key), "value": ToJSON(p.Value)}
	}
	return map[string]any{"items": items}
}

func expressionsJSON(exprs []Expression) []map[string]any {
	out := make([]map[string]any, len(exprs))
	for i, e := range exprs {
		out[i] = ToJSON(e)
	}
	return out
}
