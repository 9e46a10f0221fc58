package hooks

type stateCell[T any] struct {
	owner *Owner
	value T
	queue []func(T) T
	set   *Setter[T]

	// dispatch is non-nil only for cells created by UseReducer; it holds
	// the Dispatch[A] closure so the same function is returned on every
	// render.
	dispatch any
}

func (c *stateCell[T]) kind() cellKind { return kindState }

func (c *stateCell[T]) enqueue(apply func(T) T) {
	o := c.owner
	if o.destroyed {
		return
	}
	c.queue = append(c.queue, apply)
	if o.rt.schedule != nil {
		o.rt.schedule(o)
	}
}

// drain folds the queued updates over the current value in enqueue order.
// Each render that reads the cell consumes the whole queue exactly once.
func (c *stateCell[T]) drain() T {
	if len(c.queue) > 0 {
		for _, apply := range c.queue {
			c.value = apply(c.value)
		}
		c.queue = c.queue[:0]
	}
	return c.value
}

// Setter writes to one state cell. Set and Update never mutate the value
// already returned by the current render; they enqueue and ask the
// scheduler for a re-render. Both are no-ops once the owner is destroyed.
// The same Setter pointer is returned on every render of its cell.
type Setter[T any] struct {
	cell *stateCell[T]
}

// Set enqueues a replacement value.
func (s *Setter[T]) Set(v T) {
	s.cell.enqueue(func(T) T { return v })
}

// Update enqueues an updater. When drained it receives the value produced
// by the updates queued before it, not the value the caller last saw.
func (s *Setter[T]) Update(fn func(T) T) {
	s.cell.enqueue(fn)
}

// UseState declares a state cell holding initial on its creation render.
// Later renders ignore initial and return the stored value after draining
// any queued updates.
func UseState[T any](rt *Runtime, initial T) (T, *Setter[T]) {
	return useState(rt, func() T { return initial })
}

// UseStateLazy is UseState with a lazy initializer: init runs exactly
// once, on the cell's creation render.
func UseStateLazy[T any](rt *Runtime, init func() T) (T, *Setter[T]) {
	return useState(rt, init)
}

func useState[T any](rt *Runtime, init func() T) (T, *Setter[T]) {
	c, _ := nextCell(rt, kindState, func() *stateCell[T] {
		sc := &stateCell[T]{owner: rt.active, value: init()}
		sc.set = &Setter[T]{cell: sc}
		return sc
	})
	return c.drain(), c.set
}

// Dispatch enqueues one reducer action and schedules a re-render.
type Dispatch[A any] func(action A)

// UseReducer declares a state cell whose queued updates are actions folded
// through reducer. If initialAction is given, the creation render seeds
// the cell with reducer(initial, initialAction[0]) instead of initial;
// only the first variadic element is considered.
func UseReducer[S, A any](rt *Runtime, reducer func(S, A) S, initial S, initialAction ...A) (S, Dispatch[A]) {
	c, _ := nextCell(rt, kindState, func() *stateCell[S] {
		v := initial
		if len(initialAction) > 0 {
			v = reducer(v, initialAction[0])
		}
		sc := &stateCell[S]{owner: rt.active, value: v}
		sc.set = &Setter[S]{cell: sc}
		sc.dispatch = Dispatch[A](func(action A) {
			sc.enqueue(func(s S) S { return reducer(s, action) })
		})
		return sc
	})
	d, ok := c.dispatch.(Dispatch[A])
	if !ok {
		panic(usageError("hook type mismatch: state cell was not created by UseReducer with this action type"))
	}
	return c.drain(), d
}
