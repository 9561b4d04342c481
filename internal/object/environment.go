package object

// Cell is a reference-shared storage location, not a plain value slot: two
// closures that capture the same binding share the same *Cell, so a
// mutation through one is visible through the other (spec.md §9's cell
// design). go-dws's Environment (internal/interp/environment.go) stores
// bare values in its scope map; elf-lang's map stores *Cell instead, which
// is the one deliberate generalization beyond that file, since DWScript has
// no closures-over-mutable-locals to model.
type Cell struct {
	Value   Value
	Mutable bool
}

// Environment is a lexical scope: a map of names to Cells, chained to an
// optional parent for outer-scope lookups. The chain shape mirrors go-dws's
// Environment.Get/Set/Define walk over outer.
type Environment struct {
	store map[string]*Cell
	outer *Environment
}

// NewEnvironment creates an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]*Cell)}
}

// NewEnclosedEnvironment creates a child scope of outer, e.g. for a
// function call or if-branch body.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]*Cell), outer: outer}
}

// Get resolves name by walking outward through enclosing scopes.
func (e *Environment) Get(name string) (Value, bool) {
	cell, ok := e.store[name]
	if ok {
		return cell.Value, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// GetCell resolves name to its backing Cell, so a caller can check
// Cell.Mutable before calling Set.
func (e *Environment) GetCell(name string) (*Cell, bool) {
	cell, ok := e.store[name]
	if ok {
		return cell, true
	}
	if e.outer != nil {
		return e.outer.GetCell(name)
	}
	return nil, false
}

// Define introduces a new binding in the current scope, shadowing any
// binding of the same name in an enclosing scope.
func (e *Environment) Define(name string, value Value, mutable bool) {
	e.store[name] = &Cell{Value: value, Mutable: mutable}
}

// Set rebinds an existing Cell's value in place, so every alias (every
// closure that captured this name) observes the new value. The caller is
// responsible for having already checked Cell.Mutable.
func (e *Environment) Set(name string, value Value) bool {
	cell, ok := e.GetCell(name)
	if !ok {
		return false
	}
	cell.Value = value
	return true
}
