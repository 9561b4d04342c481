package eval

import (
	"fmt"

	"github.com/cwbudde/elf-lang/internal/object"
)

func unexpectedArgument(name, badType string) error {
	return fmt.Errorf("Unexpected argument: %s(%s, …)", name, badType)
}

func builtin(name string, arity int, fn object.BuiltinFn) *object.Function {
	return &object.Function{Builtin: fn, Arity: arity, Name: name}
}

// NewGlobalEnvironment builds the top-level environment every program runs
// in, pre-populated with the 9 built-ins and the 4 operator-functions from
// spec.md §4.4.
func NewGlobalEnvironment() *object.Environment {
	env := object.NewEnvironment()
	for name, fn := range builtins() {
		env.Define(name, fn, false)
	}
	// The four operator-functions are binary regardless of arity-1 unary
	// '-' existing as a separate PrefixExpression node (spec.md §4.4).
	for _, op := range []string{"+", "-", "*", "/"} {
		op := op
		env.Define(op, builtin(op, 2, func(args []object.Value) (object.Value, error) {
			return ApplyInfix(op, args[0], args[1])
		}), false)
	}
	return env
}

func builtins() map[string]*object.Function {
	return map[string]*object.Function{
		"puts":   builtin("puts", -1, biPuts),
		"first":  builtin("first", 1, biFirst),
		"rest":   builtin("rest", 1, biRest),
		"size":   builtin("size", 1, biSize),
		"push":   builtin("push", 2, biPush),
		"assoc":  builtin("assoc", 3, biAssoc),
		"map":    builtin("map", 2, biMap),
		"filter": builtin("filter", 2, biFilter),
		"fold":   builtin("fold", 3, biFold),
	}
}

// biPuts prints each argument's repr separated by a single space, followed
// by a trailing space and a newline (spec.md §4.4, §8 scenario 1, §9 Open
// Question 1).
func biPuts(args []object.Value) (object.Value, error) {
	for _, a := range args {
		fmt.Print(a.Repr())
		fmt.Print(" ")
	}
	fmt.Print("\n")
	return object.NilValue, nil
}

func listElements(v object.Value) ([]object.Value, bool) {
	switch c := v.(type) {
	case *object.List:
		return c.Elements, true
	case *object.Set:
		return c.Elements, true
	}
	return nil, false
}

func biFirst(args []object.Value) (object.Value, error) {
	elems, ok := listElements(args[0])
	if !ok {
		return nil, unexpectedArgument("first", args[0].Type())
	}
	if len(elems) == 0 {
		return object.NilValue, nil
	}
	return elems[0], nil
}

func biRest(args []object.Value) (object.Value, error) {
	elems, ok := listElements(args[0])
	if !ok {
		return nil, unexpectedArgument("rest", args[0].Type())
	}
	if len(elems) == 0 {
		return &object.List{}, nil
	}
	return &object.List{Elements: append([]object.Value(nil), elems[1:]...)}, nil
}

func biSize(args []object.Value) (object.Value, error) {
	switch c := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(c.Value))}, nil
	case *object.List:
		return &object.Integer{Value: int64(len(c.Elements))}, nil
	case *object.Set:
		return &object.Integer{Value: int64(len(c.Elements))}, nil
	case *object.Dictionary:
		return &object.Integer{Value: int64(len(c.Entries))}, nil
	}
	return nil, unexpectedArgument("size", args[0].Type())
}

// biPush appends v to a List (order preserved) or adds it to a Set
// (deduplicated); `push(v, coll)` per spec.md §4.4's signature list.
func biPush(args []object.Value) (object.Value, error) {
	v, coll := args[0], args[1]
	switch c := coll.(type) {
	case *object.List:
		return &object.List{Elements: append(append([]object.Value(nil), c.Elements...), v)}, nil
	case *object.Set:
		merged := object.NewSet(c.Elements)
		merged.Add(v)
		return merged, nil
	}
	return nil, unexpectedArgument("push", coll.Type())
}

// biAssoc implements `assoc(k, v, dict)`, returning a new Dictionary with
// k bound to v.
func biAssoc(args []object.Value) (object.Value, error) {
	k, v, coll := args[0], args[1], args[2]
	dict, ok := coll.(*object.Dictionary)
	if !ok {
		return nil, unexpectedArgument("assoc", coll.Type())
	}
	if k.Type() == object.DICTIONARY {
		return nil, fmt.Errorf("Unable to use a Dictionary as a Dictionary key")
	}
	merged := object.NewDictionary(dict.Entries)
	merged.Set(k, v)
	return merged, nil
}

func biMap(args []object.Value) (object.Value, error) {
	fn, list := args[0], args[1]
	if _, ok := fn.(*object.Function); !ok {
		return nil, unexpectedArgument("map", fn.Type())
	}
	elems, ok := listElements(list)
	if !ok {
		return nil, unexpectedArgument("map", list.Type())
	}
	out := make([]object.Value, len(elems))
	for i, e := range elems {
		v, err := Apply(fn, []object.Value{e})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &object.List{Elements: out}, nil
}

func biFilter(args []object.Value) (object.Value, error) {
	fn, list := args[0], args[1]
	if _, ok := fn.(*object.Function); !ok {
		return nil, unexpectedArgument("filter", fn.Type())
	}
	elems, ok := listElements(list)
	if !ok {
		return nil, unexpectedArgument("filter", list.Type())
	}
	var out []object.Value
	for _, e := range elems {
		v, err := Apply(fn, []object.Value{e})
		if err != nil {
			return nil, err
		}
		if object.Truthy(v) {
			out = append(out, e)
		}
	}
	return &object.List{Elements: out}, nil
}

func biFold(args []object.Value) (object.Value, error) {
	init, fn, list := args[0], args[1], args[2]
	if _, ok := fn.(*object.Function); !ok {
		return nil, unexpectedArgument("fold", fn.Type())
	}
	elems, ok := listElements(list)
	if !ok {
		return nil, unexpectedArgument("fold", list.Type())
	}
	acc := init
	for _, e := range elems {
		v, err := Apply(fn, []object.Value{acc, e})
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}
