package ast

import "github.com/cwbudde/elf-lang/internal/token"

// FunctionLiteral is `|p1, p2| body` (or `||body` for zero parameters).
// Body is always a Block even for a single-expression body, so closures
// always carry an explicit scope boundary.
type FunctionLiteral struct {
	Token  token.Token // the opening '|'
	Params []*Identifier
	Body   *Block
}

func (n *FunctionLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *FunctionLiteral) expressionNode()      {}
func (n *FunctionLiteral) json() map[string]any {
	params := make([]map[string]any, len(n.Params))
	for i, p := range n.Params {
		params[i] = ToJSON(p)
	}
	return map[string]any{
		"parameters": params,
		"body":       ToJSON(n.Body),
	}
}

// CallExpression applies Function to Arguments. Arity less than the
// callee's parameter count yields a partial application at evaluation time
// rather than an arity error (spec.md §4.4).
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (n *CallExpression) TokenLiteral() string { return n.Token.Literal }
func (n *CallExpression) Pos() token.Position  { return n.Token.Pos }
func (n *CallExpression) expressionNode()      {}
func (n *CallExpression) json() map[string]any {
	return map[string]any{
		"function":  ToJSON(n.Function),
		"arguments": expressionsJSON(n.Arguments),
	}
}

// FunctionComposition is a flattened `f >> g >> h` chain. The parser
// flattens nested `>>` infix applications into a single Functions slice at
// parse time (spec.md §4.2/§9) rather than leaving a right- or
// left-leaning tree of binary nodes for the evaluator to walk.
type FunctionComposition struct {
	Token     token.Token // the first '>>' token in the chain
	Functions []Expression
}

func (n *FunctionComposition) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionComposition) Pos() token.Position  { return n.Token.Pos }
func (n *FunctionComposition) expressionNode()      {}
func (n *FunctionComposition) json() map[string]any {
	return map[string]any{"functions": expressionsJSON(n.Functions)}
}

// FunctionThread is a flattened `value |> f |> g` chain: Initial is threaded
// through each entry of Functions in order. Flattened at parse time for the
// same reason as FunctionComposition.
type FunctionThread struct {
	Token     token.Token // the first '|>' token in the chain
	Initial   Expression
	Functions []Expression
}

func (n *FunctionThread) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionThread) Pos() token.Position  { return n.Token.Pos }
func (n *FunctionThread) expressionNode()      {}
func (n *FunctionThread) json() map[string]any {
	return map[string]any{
		"initial":   ToJSON(n.Initial),
		"functions": expressionsJSON(n.Functions),
	}
}
