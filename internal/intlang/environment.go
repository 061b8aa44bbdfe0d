package intlang

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Environment stores the value of every assigned variable. Variables are kept
// in the order they were first assigned, re-assigning a variable changes its
// value but not its position.
type Environment struct {
	values *linkedhashmap.Map
}

func NewEnvironment() *Environment {
	return &Environment{linkedhashmap.New()}
}

// Set inserts the variable or overwrites its previous value.
func (env *Environment) Set(name string, value int64) {
	env.values.Put(name, value)
}

// Get returns the value of the variable named by the token.
func (env *Environment) Get(name *Token) (int64, error) {
	if value, ok := env.Lookup(name.Lexeme); ok {
		return value, nil
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return 0, newRuntimeError(UndefinedVariable, name, msg)
}

func (env *Environment) Lookup(name string) (int64, bool) {
	value, ok := env.values.Get(name)
	if !ok {
		return 0, false
	}
	return value.(int64), true
}

func (env *Environment) Contains(name string) bool {
	_, ok := env.values.Get(name)
	return ok
}

func (env *Environment) Len() int {
	return env.values.Size()
}

// Each calls fn for every variable in first-assignment order.
func (env *Environment) Each(fn func(name string, value int64)) {
	env.values.Each(func(key, value interface{}) {
		fn(key.(string), value.(int64))
	})
}
