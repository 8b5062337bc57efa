// Package action implements the actions that keys can be bound to.
package action

// Action is something that can be done in reaction to input.
type Action interface {
	Do()

	// Explain returns a short, human-readable explanation of what Do does, e.g.
	// for key help.
	Explain() string
}

// Simple implements the Action interface.
// It models an action as a func() which is called on Do, explained by a fixed
// name.
type Simple struct {
	name string
	do   func()
}

// Named returns a pointer to a new simple action doing the given function,
// explained by the given name.
func Named(name string, do func()) *Simple {
	return &Simple{
		name: name,
		do:   do,
	}
}

// Do performs this simple action.
func (a *Simple) Do() {
	a.do()
}

// Explain returns the name of this simple action.
func (a *Simple) Explain() string {
	return a.name
}
