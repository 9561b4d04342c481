package object

import "github.com/cwbudde/elf-lang/internal/ast"

// BuiltinFn is the Go implementation behind a built-in Function value.
type BuiltinFn func(args []Value) (Value, error)

// Function is the single Value variant covering user closures, built-ins,
// and partial applications of either — spec.md §9 deliberately keeps these
// as one runtime shape rather than three, so callers never need a type
// switch to decide whether something is callable.
//
// Exactly one of (Params/Body/Env) or Builtin is set for a "full" function;
// Bound holds already-supplied leading arguments when this Function is a
// partial application produced by a call with too few arguments.
type Function struct {
	Params  []*ast.Identifier
	Body    *ast.Block
	Env     *Environment
	Builtin BuiltinFn
	Arity   int // total parameter count, used to detect partial application
	Bound   []Value
	Name    string // diagnostic only, e.g. "+" for the plus operator-function
}

func (f *Function) Type() string { return FUNCTION }

// Repr is uniform across user, builtin, and partial functions (spec.md §9
// Open Question 2): elf-lang never exposes a function's source or arity in
// its printed form.
func (f *Function) Repr() string { return "<fn>" }

// NeedsMore reports whether calling f with n more arguments (len(Bound)+n
// in total) still leaves it under-applied.
func (f *Function) NeedsMore(n int) bool {
	return len(f.Bound)+n < f.Arity
}
