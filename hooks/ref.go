package hooks

// Ref is a mutable container stable across renders. Writing Current never
// schedules a re-render and its value is never compared.
type Ref[T any] struct {
	Current T
}

type refCell[T any] struct {
	ref *Ref[T]
}

func (c *refCell[T]) kind() cellKind { return kindRef }

// UseRef declares a ref cell seeded with initial on the creation render.
// Every later render returns the same *Ref.
func UseRef[T any](rt *Runtime, initial T) *Ref[T] {
	c, _ := nextCell(rt, kindRef, func() *refCell[T] {
		return &refCell[T]{ref: &Ref[T]{Current: initial}}
	})
	return c.ref
}
