package hooks

type memoCell[T any] struct {
	value T
	deps  Deps
}

func (c *memoCell[T]) kind() cellKind { return kindMemo }

// UseMemo declares a memo cell. compute runs on the creation render and
// again whenever deps changes; otherwise the stored result is returned
// unchanged. Pass a nil deps to recompute every render, an empty Deps{} to
// compute once.
func UseMemo[T any](rt *Runtime, compute func() T, deps Deps) T {
	c, created := nextCell(rt, kindMemo, func() *memoCell[T] {
		return &memoCell[T]{value: compute(), deps: deps}
	})
	if !created && c.deps.changed(deps) {
		c.value = compute()
		c.deps = deps
	}
	return c.value
}

// UseCallback memoizes fn itself: while deps is unchanged the function
// value from the last changed render is returned, keeping its identity
// stable for consumers that compare callbacks.
func UseCallback[F any](rt *Runtime, fn F, deps Deps) F {
	return UseMemo(rt, func() F { return fn }, deps)
}
