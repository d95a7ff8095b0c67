package runtime

import "sort"

// Environment is the single flat variable table owned by one program run.
// The language has no block scoping, so there is no parent chain: every
// name lives for the rest of the run once declared.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Declare inserts name with the null sentinel as its initial value.
func (e *Environment) Declare(name string) error {
	if _, ok := e.values[name]; ok {
		return NameErrorf("Variable %s defined more than once", name)
	}
	e.values[name] = NullValue{}
	return nil
}

// Has reports whether name has been declared.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Read returns the current value of name, which may still be the null
// sentinel if the variable was never assigned.
func (e *Environment) Read(name string) (Value, error) {
	v, ok := e.values[name]
	if !ok {
		return nil, NameErrorf("Variable %s has not been defined", name)
	}
	return v, nil
}

// Write overwrites the value of an already-declared name. Values are
// untyped slots: a name may hold an integer in one statement and a string
// in the next.
func (e *Environment) Write(name string, value Value) error {
	if _, ok := e.values[name]; !ok {
		return NameErrorf("Variable %s has not been defined", name)
	}
	e.values[name] = value
	return nil
}

// Len returns the number of declared variables.
func (e *Environment) Len() int {
	return len(e.values)
}

// Keys returns the declared names in sorted order (useful for determinism
// in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
