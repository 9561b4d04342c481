package eval

import (
	"fmt"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/object"
)

func evalExpressionList(exprs []ast.Expression, env *object.Environment) ([]object.Value, error) {
	values := make([]object.Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func evalListLiteral(n *ast.ListLiteral, env *object.Environment) (object.Value, error) {
	elems, err := evalExpressionList(n.Elements, env)
	if err != nil {
		return nil, err
	}
	return &object.List{Elements: elems}, nil
}

// evalSetLiteral rejects a Dictionary among its direct elements
// (spec.md §4.4).
func evalSetLiteral(n *ast.SetLiteral, env *object.Environment) (object.Value, error) {
	elems, err := evalExpressionList(n.Elements, env)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		if e.Type() == object.DICTIONARY {
			return nil, fmt.Errorf("Unable to include a Dictionary within a Set")
		}
	}
	return object.NewSet(elems), nil
}

// evalDictionaryLiteral rejects a Dictionary as any key (spec.md §4.4).
func evalDictionaryLiteral(n *ast.DictionaryLiteral, env *object.Environment) (object.Value, error) {
	entries := make([]object.DictEntry, 0, len(n.Pairs))
	for _, pair := range n.Pairs {
		key, err := Eval(pair.Key, env)
		if err != nil {
			return nil, err
		}
		if key.Type() == object.DICTIONARY {
			return nil, fmt.Errorf("Unable to use a Dictionary as a Dictionary key")
		}
		value, err := Eval(pair.Value, env)
		if err != nil {
			return nil, err
		}
		entries = append(entries, object.DictEntry{Key: key, Value: value})
	}
	return object.NewDictionary(entries), nil
}

func evalIndexExpression(n *ast.IndexExpression, env *object.Environment) (object.Value, error) {
	left, err := Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	idx, err := Eval(n.Index, env)
	if err != nil {
		return nil, err
	}

	switch container := left.(type) {
	case *object.List:
		i, ok := idx.(*object.Integer)
		if !ok {
			return nil, fmt.Errorf("Unable to perform index operation, found: List[%s]", idx.Type())
		}
		return listAt(container.Elements, i.Value), nil
	case *object.String:
		i, ok := idx.(*object.Integer)
		if !ok {
			return nil, fmt.Errorf("Unable to perform index operation, found: String[%s]", idx.Type())
		}
		runes := []rune(container.Value)
		at := normalizeIndex(i.Value, len(runes))
		if at < 0 {
			return object.NilValue, nil
		}
		return &object.String{Value: string(runes[at])}, nil
	case *object.Dictionary:
		if idx.Type() == object.DICTIONARY {
			return nil, fmt.Errorf("Unable to use a Dictionary as a Dictionary key")
		}
		if v, ok := container.Get(idx); ok {
			return v, nil
		}
		return object.NilValue, nil
	}
	return nil, fmt.Errorf("Unable to perform index operation, found: %s[%s]", left.Type(), idx.Type())
}

func normalizeIndex(i int64, length int) int {
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return -1
	}
	return int(i)
}

func listAt(elems []object.Value, i int64) object.Value {
	at := normalizeIndex(i, len(elems))
	if at < 0 {
		return object.NilValue
	}
	return elems[at]
}
