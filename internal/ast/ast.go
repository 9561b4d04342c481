// Package ast defines elf-lang's abstract syntax tree. Every node can render
// itself to a canonical, lexicographically-keyed JSON object (spec.md §3) and
// reports its starting token literal and source position, mirroring go-dws's
// Node interface (internal/ast/ast.go) without its String method.
package ast

import (
	"github.com/cwbudde/elf-lang/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal of the token the node starts with.
	TokenLiteral() string
	// Pos returns the node's position in the source, for diagnostics.
	Pos() token.Position
	// json returns the node's fields as a plain map so callers can merge in
	// the node's "type" discriminator and let encoding/json sort the keys.
	json() map[string]any
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself being a
// value (though a Comment or Expression statement wraps one).
type Statement interface {
	Node
	statementNode()
}

// ToJSON renders a node as a JSON object with the fixed "type" discriminator
// and all other fields, letting encoding/json's map-key sort deliver
// spec.md §3's "keys sorted lexicographically" for free.
func ToJSON(n Node) map[string]any {
	fields := n.json()
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["type"] = nodeType(n)
	return out
}

// nodeType returns the fixed `type` discriminator string for a node, per the
// table in spec.md §3.
func nodeType(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *Block:
		return "Block"
	case *ExpressionStatement:
		return "Expression"
	case *CommentStatement:
		return "Comment"
	case *Identifier:
		return "Identifier"
	case *IntegerLiteral:
		return "Integer"
	case *DecimalLiteral:
		return "Decimal"
	case *StringLiteral:
		return "String"
	case *BooleanLiteral:
		return "Boolean"
	case *NilLiteral:
		return "Nil"
	case *LetStatement:
		if n.(*LetStatement).Mutable {
			return "MutableLet"
		}
		return "Let"
	case *AssignmentExpression:
		return "Assignment"
	case *InfixExpression:
		return "Infix"
	case *PrefixExpression:
		return "Prefix"
	case *ListLiteral:
		return "List"
	case *SetLiteral:
		return "Set"
	case *DictionaryLiteral:
		return "Dictionary"
	case *IndexExpression:
		return "Index"
	case *IfExpression:
		return "If"
	case *FunctionLiteral:
		return "Function"
	case *CallExpression:
		return "Call"
	case *FunctionComposition:
		return "FunctionComposition"
	case *FunctionThread:
		return "FunctionThread"
	default:
		return "Unknown"
	}
}
