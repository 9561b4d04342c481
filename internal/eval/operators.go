package eval

import (
	"fmt"
	"strings"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/object"
)

func evalInfixExpression(n *ast.InfixExpression, env *object.Environment) (object.Value, error) {
	switch n.Operator {
	case "&&":
		left, err := Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(left) {
			return &object.Boolean{Value: false}, nil
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: object.Truthy(right)}, nil
	case "||":
		left, err := Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		if object.Truthy(left) {
			return &object.Boolean{Value: true}, nil
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: object.Truthy(right)}, nil
	}

	left, err := Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	return ApplyInfix(n.Operator, left, right)
}

// ApplyInfix implements every binary operator's semantics (spec.md §4.4) in
// one place, shared between InfixExpression evaluation and the `+ - * /`
// operator-function builtins (spec.md §9's centralized-promotion note).
func ApplyInfix(op string, left, right object.Value) (object.Value, error) {
	switch op {
	case "+":
		return applyPlus(left, right)
	case "-":
		return applyMinus(left, right)
	case "*":
		return applyMultiply(left, right)
	case "/":
		return applyDivide(left, right)
	case "==":
		return &object.Boolean{Value: object.Equal(left, right)}, nil
	case "!=":
		return &object.Boolean{Value: !object.Equal(left, right)}, nil
	case "<":
		return applyCompare(left, right, "<")
	case ">":
		return applyCompare(left, right, ">")
	case "<=":
		return applyCompare(left, right, "<=")
	case ">=":
		return applyCompare(left, right, ">=")
	case "&&":
		return &object.Boolean{Value: object.Truthy(left) && object.Truthy(right)}, nil
	case "||":
		return &object.Boolean{Value: object.Truthy(left) || object.Truthy(right)}, nil
	}
	return nil, fmt.Errorf("unsupported operator: %s", op)
}

func isNumeric(v object.Value) bool {
	switch v.(type) {
	case *object.Integer, *object.Decimal:
		return true
	}
	return false
}

func applyPlus(left, right object.Value) (object.Value, error) {
	if isNumeric(left) && isNumeric(right) {
		l, r := object.Promote(left, right)
		if li, ok := l.(*object.Integer); ok {
			return &object.Integer{Value: li.Value + r.(*object.Integer).Value}, nil
		}
		return &object.Decimal{Value: l.(*object.Decimal).Value + r.(*object.Decimal).Value}, nil
	}
	if ls, ok := left.(*object.String); ok {
		if rs, ok := right.(*object.String); ok {
			return &object.String{Value: ls.Value + rs.Value}, nil
		}
		return &object.String{Value: ls.Value + right.Repr()}, nil
	}
	if rs, ok := right.(*object.String); ok {
		return &object.String{Value: left.Repr() + rs.Value}, nil
	}
	if ll, ok := left.(*object.List); ok {
		if rl, ok := right.(*object.List); ok {
			elems := append(append([]object.Value(nil), ll.Elements...), rl.Elements...)
			return &object.List{Elements: elems}, nil
		}
	}
	if ls, ok := left.(*object.Set); ok {
		if rs, ok := right.(*object.Set); ok {
			merged := object.NewSet(ls.Elements)
			for _, e := range rs.Elements {
				merged.Add(e)
			}
			return merged, nil
		}
	}
	if ld, ok := left.(*object.Dictionary); ok {
		if rd, ok := right.(*object.Dictionary); ok {
			merged := object.NewDictionary(ld.Entries)
			for _, e := range rd.Entries {
				merged.Set(e.Key, e.Value)
			}
			return merged, nil
		}
	}
	return nil, unsupportedOp(left, "+", right)
}

func applyMinus(left, right object.Value) (object.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, unsupportedOp(left, "-", right)
	}
	l, r := object.Promote(left, right)
	if li, ok := l.(*object.Integer); ok {
		return &object.Integer{Value: li.Value - r.(*object.Integer).Value}, nil
	}
	return &object.Decimal{Value: l.(*object.Decimal).Value - r.(*object.Decimal).Value}, nil
}

func applyMultiply(left, right object.Value) (object.Value, error) {
	if isNumeric(left) && isNumeric(right) {
		l, r := object.Promote(left, right)
		if li, ok := l.(*object.Integer); ok {
			return &object.Integer{Value: li.Value * r.(*object.Integer).Value}, nil
		}
		return &object.Decimal{Value: l.(*object.Decimal).Value * r.(*object.Decimal).Value}, nil
	}
	if ls, ok := left.(*object.String); ok {
		if ri, ok := right.(*object.Integer); ok {
			if ri.Value < 0 {
				return nil, fmt.Errorf("Unsupported operation: String * Integer (< 0)")
			}
			return &object.String{Value: strings.Repeat(ls.Value, int(ri.Value))}, nil
		}
		if _, ok := right.(*object.Decimal); ok {
			return nil, fmt.Errorf("Unsupported operation: String * Decimal")
		}
	}
	return nil, unsupportedOp(left, "*", right)
}

func applyDivide(left, right object.Value) (object.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, unsupportedOp(left, "/", right)
	}
	l, r := object.Promote(left, right)
	if li, ok := l.(*object.Integer); ok {
		ri := r.(*object.Integer)
		if ri.Value == 0 {
			return nil, fmt.Errorf("Division by zero")
		}
		return &object.Integer{Value: li.Value / ri.Value}, nil
	}
	rd := r.(*object.Decimal)
	if rd.Value == 0 {
		return nil, fmt.Errorf("Division by zero")
	}
	return &object.Decimal{Value: l.(*object.Decimal).Value / rd.Value}, nil
}

func comparable(v object.Value) bool {
	return isNumeric(v) || v.Type() == object.STRING
}

// applyCompare implements <, >, <=, >= uniformly on top of object.Less, which
// is the only ordering primitive object exposes.
func applyCompare(left, right object.Value, op string) (object.Value, error) {
	if !comparable(left) || !comparable(right) || left.Type() != right.Type() && !(isNumeric(left) && isNumeric(right)) {
		return nil, unsupportedOp(left, op, right)
	}
	var result bool
	switch op {
	case "<":
		result = object.Less(left, right)
	case ">":
		result = object.Less(right, left)
	case "<=":
		result = !object.Less(right, left)
	case ">=":
		result = !object.Less(left, right)
	}
	return &object.Boolean{Value: result}, nil
}

func unsupportedOp(left object.Value, op string, right object.Value) error {
	return fmt.Errorf("Unsupported operation: %s %s %s", left.Type(), op, right.Type())
}

func evalPrefixExpression(n *ast.PrefixExpression, env *object.Environment) (object.Value, error) {
	right, err := Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		switch r := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -r.Value}, nil
		case *object.Decimal:
			return &object.Decimal{Value: -r.Value}, nil
		}
		return nil, fmt.Errorf("Unsupported operation: - %s", right.Type())
	}
	return nil, fmt.Errorf("unsupported prefix operator: %s", n.Operator)
}
