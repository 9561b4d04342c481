package eval

import (
	"fmt"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/object"
)

func evalCallExpression(n *ast.CallExpression, env *object.Environment) (object.Value, error) {
	fnVal, err := Eval(n.Function, env)
	if err != nil {
		return nil, err
	}
	args, err := evalExpressionList(n.Arguments, env)
	if err != nil {
		return nil, err
	}
	return Apply(fnVal, args)
}

// Apply invokes callee with args, implementing spec.md §4.4's partial
// application rule: fewer args than the callee's arity yields a new
// Function with the given args bound as a prefix, rather than an arity
// error. Applies uniformly to user closures and built-ins (spec.md §9).
func Apply(callee object.Value, args []object.Value) (object.Value, error) {
	fn, ok := callee.(*object.Function)
	if !ok {
		return nil, fmt.Errorf("Expected a Function, found: %s", callee.Type())
	}

	all := make([]object.Value, 0, len(fn.Bound)+len(args))
	all = append(all, fn.Bound...)
	all = append(all, args...)

	if fn.Builtin != nil {
		if fn.Arity < 0 { // variadic, e.g. puts
			return fn.Builtin(all)
		}
		if len(all) < fn.Arity {
			return &object.Function{Builtin: fn.Builtin, Arity: fn.Arity, Bound: all, Name: fn.Name}, nil
		}
		return fn.Builtin(all)
	}

	if len(all) < fn.Arity {
		return &object.Function{Params: fn.Params, Body: fn.Body, Env: fn.Env, Arity: fn.Arity, Bound: all}, nil
	}

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param.Name, all[i], false)
	}
	return evalBlockOf(fn.Body, callEnv)
}

// evalBlockOf runs a function body block, exposed separately from
// evalIfExpression's block evaluation only because functions need no
// special enclosing-scope construction beyond callEnv itself.
func evalBlockOf(body *ast.Block, env *object.Environment) (object.Value, error) {
	return evalStatements(body.Statements, env)
}

// evalFunctionComposition builds a unary Function that applies each
// operand left-to-right (spec.md §4.4): `(f >> g)(x) == g(f(x))`.
func evalFunctionComposition(n *ast.FunctionComposition, env *object.Environment) (object.Value, error) {
	fns, err := evalExpressionList(n.Functions, env)
	if err != nil {
		return nil, err
	}
	composed := append([]object.Value(nil), fns...)
	return &object.Function{
		Arity: 1,
		Builtin: func(args []object.Value) (object.Value, error) {
			v := args[0]
			for _, f := range composed {
				result, err := Apply(f, []object.Value{v})
				if err != nil {
					return nil, err
				}
				v = result
			}
			return v, nil
		},
	}, nil
}

// evalFunctionThread evaluates `initial`, then threads the running value
// through each step: a Call step gets the value appended as its last
// argument; any other step is called directly with the value as its sole
// argument (spec.md §4.4).
func evalFunctionThread(n *ast.FunctionThread, env *object.Environment) (object.Value, error) {
	v, err := Eval(n.Initial, env)
	if err != nil {
		return nil, err
	}
	for _, step := range n.Functions {
		if call, ok := step.(*ast.CallExpression); ok {
			callee, err := Eval(call.Function, env)
			if err != nil {
				return nil, err
			}
			args, err := evalExpressionList(call.Arguments, env)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			v, err = Apply(callee, args)
			if err != nil {
				return nil, err
			}
			continue
		}
		callee, err := Eval(step, env)
		if err != nil {
			return nil, err
		}
		v, err = Apply(callee, []object.Value{v})
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}
