package integrators

import "github.com/san-kum/odestep/internal/dynamo"

var (
	_ dynamo.Method = (*Euler)(nil)
	_ dynamo.Method = (*ModifiedEuler)(nil)
	_ dynamo.Method = (*RK2)(nil)
	_ dynamo.Method = (*RK4)(nil)
	_ dynamo.Method = (*AdamsBashforth)(nil)
)

// All returns one fresh instance of every method, in menu order.
func All(opts ...Option) []dynamo.Method {
	return []dynamo.Method{
		NewEuler(opts...),
		NewModifiedEuler(opts...),
		NewRK2(opts...),
		NewRK4(opts...),
		NewAdamsBashforth(opts...),
	}
}
