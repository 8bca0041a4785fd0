package tiny

import "github.com/ib-77/also/pkg/also/solo"

// Scope holds a value while it is passed through a chain of steps.
type Scope[V any] struct {
	v V
}

func Of[V any](v V) Scope[V] {
	return Scope[V]{v: v}
}

func (s Scope[V]) Value() V {
	return s.v
}

// Also runs a mutation step and keeps the scope
func (s Scope[V]) Also(f func(v *V)) Scope[V] {
	return Scope[V]{v: solo.Also(s.v, f)}
}

// When runs f only if cond holds for the current value
func (s Scope[V]) When(cond func(v V) bool, f func(v *V)) Scope[V] {
	if !cond(s.v) {
		return s
	}
	return s.Also(f)
}

// TakeIf ends the chain: the value if check passes, else check's error
func (s Scope[V]) TakeIf(check func(v *V) error) (V, error) {
	return solo.TakeIfErr(s.v, check)
}

// Let moves the scope to a new value computed from the current one
func Let[V, R any](s Scope[V], f func(v V) R) Scope[R] {
	return Scope[R]{v: solo.Let(s.v, f)}
}

// Run ends the chain with f's result
func Run[V, R any](s Scope[V], f func(v V) R) R {
	return solo.Let(s.v, f)
}
