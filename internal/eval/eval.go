// Package eval is elf-lang's tree-walking evaluator: Eval walks an
// *ast.Program (or any node within it) against an *object.Environment and
// produces an object.Value or a runtime error carrying one of spec.md §7's
// fixed error-taxonomy strings.
//
// The split into many concern-named files (eval.go, operators.go,
// collections.go, calls.go, builtins.go) mirrors go-dws's
// internal/interp package layout (statements.go, operators_eval.go,
// expressions_binary.go, functions_calls.go), minus the OOP/record/
// property evaluation this spec excludes.
package eval

import (
	"fmt"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/object"
)

// Eval evaluates a single AST node in env.
func Eval(node ast.Node, env *object.Environment) (object.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return evalStatements(n.Statements, env)
	case *ast.Block:
		return evalStatements(n.Statements, env)
	case *ast.ExpressionStatement:
		return Eval(n.Expression, env)
	case *ast.CommentStatement:
		return object.NilValue, nil

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}, nil
	case *ast.DecimalLiteral:
		return &object.Decimal{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}, nil
	case *ast.BooleanLiteral:
		return &object.Boolean{Value: n.Value}, nil
	case *ast.NilLiteral:
		return object.NilValue, nil

	case *ast.Identifier:
		if v, ok := env.Get(n.Name); ok {
			return v, nil
		}
		return nil, fmt.Errorf("Identifier can not be found: %s", n.Name)

	case *ast.LetStatement:
		return evalLet(n, env)
	case *ast.AssignmentExpression:
		return evalAssignment(n, env)

	case *ast.InfixExpression:
		return evalInfixExpression(n, env)
	case *ast.PrefixExpression:
		return evalPrefixExpression(n, env)

	case *ast.ListLiteral:
		return evalListLiteral(n, env)
	case *ast.SetLiteral:
		return evalSetLiteral(n, env)
	case *ast.DictionaryLiteral:
		return evalDictionaryLiteral(n, env)
	case *ast.IndexExpression:
		return evalIndexExpression(n, env)

	case *ast.IfExpression:
		return evalIfExpression(n, env)

	case *ast.FunctionLiteral:
		return &object.Function{Params: n.Params, Body: n.Body, Env: env, Arity: len(n.Params)}, nil
	case *ast.CallExpression:
		return evalCallExpression(n, env)
	case *ast.FunctionComposition:
		return evalFunctionComposition(n, env)
	case *ast.FunctionThread:
		return evalFunctionThread(n, env)
	}
	return nil, fmt.Errorf("unhandled node type %T", node)
}

// evalStatements evaluates a statement list in order, returning the value
// of the last non-comment statement, or Nil if the list is empty — the
// shared rule behind Program, Block, and function bodies (spec.md §4.4).
func evalStatements(stmts []ast.Statement, env *object.Environment) (object.Value, error) {
	var result object.Value = object.NilValue
	for _, stmt := range stmts {
		v, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, isComment := stmt.(*ast.CommentStatement); isComment {
			continue
		}
		result = v
	}
	return result, nil
}

func evalLet(n *ast.LetStatement, env *object.Environment) (object.Value, error) {
	v, err := Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	env.Define(n.Name.Name, v, n.Mutable)
	return v, nil
}

func evalAssignment(n *ast.AssignmentExpression, env *object.Environment) (object.Value, error) {
	cell, ok := env.GetCell(n.Name.Name)
	if !ok {
		return nil, fmt.Errorf("Identifier can not be found: %s", n.Name.Name)
	}
	if !cell.Mutable {
		return nil, fmt.Errorf("Variable '%s' is not mutable", n.Name.Name)
	}
	v, err := Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	env.Set(n.Name.Name, v)
	return v, nil
}

func evalIfExpression(n *ast.IfExpression, env *object.Environment) (object.Value, error) {
	cond, err := Eval(n.Condition, env)
	if err != nil {
		return nil, err
	}
	if object.Truthy(cond) {
		return evalStatements(n.Consequence.Statements, object.NewEnclosedEnvironment(env))
	}
	if n.Alternative != nil {
		return evalStatements(n.Alternative.Statements, object.NewEnclosedEnvironment(env))
	}
	return object.NilValue, nil
}
