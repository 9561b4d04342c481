package ast

import "github.com/cwbudde/elf-lang/internal/token"

// AssignmentExpression rebinds an existing mutable cell: `x = x + 1`.
// The parser accepts any identifier target; the "target must already be
// mut" restriction is enforced by the evaluator, not at parse time.
type AssignmentExpression struct {
	Token token.Token // the '=' token
	Name  *Identifier
	Value Expression
}

func (e *AssignmentExpression) TokenLiteral() string { return e.Token.Literal }
func (e *AssignmentExpression) Pos() token.Position  { return e.Token.Pos }
func (e *AssignmentExpression) expressionNode()      {}
func (e *AssignmentExpression) json() map[string]any {
	return map[string]any{
		"name":  ToJSON(e.Name),
		"value": ToJSON(e.Value),
	}
}

// InfixExpression is a binary operator application: Left Operator Right.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpression) Pos() token.Position  { return e.Token.Pos }
func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) json() map[string]any {
	return map[string]any{
		"operator": e.Operator,
		"left":     ToJSON(e.Left),
		"right":    ToJSON(e.Right),
	}
}

// PrefixExpression is a unary operator application: Operator Right.
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpression) Pos() token.Position  { return e.Token.Pos }
func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) json() map[string]any {
	return map[string]any{
		"operator": e.Operator,
		"operand":  ToJSON(e.Right),
	}
}

// IndexExpression reads an element out of a List, String or Dictionary:
// Left[Index].
type IndexExpression struct {
	Token token.Token // the '[' token
	Left  Expression
	Index Expression
}

func (e *IndexExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpression) Pos() token.Position  { return e.Token.Pos }
func (e *IndexExpression) expressionNode()      {}
func (e *IndexExpression) json() map[string]any {
	return map[string]any{
		"left":  ToJSON(e.Left),
		"index": ToJSON(e.Index),
	}
}

// IfExpression is `if cond { ... } else { ... }`; the else branch is
// optional (Alternative is nil when absent, and the expression yields nil
// when the condition is false and there is no else branch).
type IfExpression struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpression) Pos() token.Position  { return e.Token.Pos }
func (e *IfExpression) expressionNode()      {}
func (e *IfExpression) json() map[string]any {
	fields := map[string]any{
		"condition":   ToJSON(e.Condition),
		"consequence": ToJSON(e.Consequence),
	}
	if e.Alternative != nil {
		fields["alternative"] = ToJSON(e.Alternative)
	} else {
		fields["alternative"] = nil
	}
	return fields
}
