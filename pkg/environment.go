package matl

// Environment maps variable names to their current values and remembers the
// order in which names were first bound. It has no locking: callers that
// reuse one across evaluations must serialise them.
type Environment struct {
	entries map[string]Number
	names   []string
}

type Binding struct {
	Name  string
	Value Number
}

func NewEnvironment() *Environment {
	return &Environment{
		entries: make(map[string]Number),
	}
}

// Set binds name to v. Rebinding keeps the name's original position.
func (e *Environment) Set(name string, v Number) {
	if _, ok := e.entries[name]; !ok {
		e.names = append(e.names, name)
	}

	e.entries[name] = v
}

func (e *Environment) Get(name string) (Number, bool) {
	v, ok := e.entries[name]
	return v, ok
}

func (e *Environment) Delete(name string) bool {
	if _, ok := e.entries[name]; !ok {
		return false
	}

	delete(e.entries, name)
	for i, n := range e.names {
		if n == name {
			e.names = append(e.names[:i], e.names[i+1:]...)
			break
		}
	}

	return true
}

func (e *Environment) Len() int {
	return len(e.names)
}

// Bindings returns the bindings in first-assignment order.
func (e *Environment) Bindings() []Binding {
	bindings := make([]Binding, 0, len(e.names))
	for _, name := range e.names {
		bindings = append(bindings, Binding{Name: name, Value: e.entries[name]})
	}

	return bindings
}
