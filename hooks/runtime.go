// Package hooks is a standalone hooks runtime: per-owner ordered state
// cells, memoization, refs, and a three-phase effect scheduler, driven by
// an external reconciler through BeginRender/EndRender and an external
// committer through FlushEffects.
package hooks

// ScheduleFunc is supplied by the surrounding scheduler. The runtime calls
// it whenever an update is enqueued for an owner so the scheduler can mark
// the owner dirty; it must not render synchronously from inside the call.
type ScheduleFunc func(*Owner)

// Runtime routes hook calls to the cell store of the owner currently
// rendering and queues effect work for the commit phases. Exactly one
// owner may be rendering at a time; the runtime is not safe for use from
// multiple goroutines.
type Runtime struct {
	active   *Owner
	schedule ScheduleFunc
	pending  [effectKindCount][]*effectCell
}

func New(schedule ScheduleFunc) *Runtime {
	return &Runtime{schedule: schedule}
}

// Owner is the persistent identity of one component instance. It owns an
// ordered sequence of cells that must be consumed by the same hook calls,
// in the same order, on every render.
type Owner struct {
	rt        *Runtime
	cells     []cell
	cursor    int
	rendered  bool
	destroyed bool
}

func (rt *Runtime) NewOwner() *Owner {
	return &Owner{rt: rt}
}

// BeginRender makes o the active owner and rewinds its cell cursor.
// Renders do not nest: beginning a render while another is in progress is
// a usage error, as is rendering a destroyed owner.
func (rt *Runtime) BeginRender(o *Owner) {
	if rt.active != nil {
		panic(usageError("begin render while another render is in progress"))
	}
	if o.rt != rt {
		panic(usageError("owner belongs to a different runtime"))
	}
	if o.destroyed {
		panic(usageError("render of a destroyed owner"))
	}
	o.cursor = 0
	rt.active = o
}

// EndRender clears the active owner and checks that the render consumed
// exactly as many cells as the store holds. On the first render the store
// grows freely; afterwards both directions of drift are usage errors.
func (rt *Runtime) EndRender() {
	o := rt.active
	if o == nil {
		panic(usageError("end render without an active render"))
	}
	rt.active = nil
	if o.rendered && o.cursor < len(o.cells) {
		panic(usageError("rendered fewer hooks than the previous render"))
	}
	o.rendered = true
}

// DestroyOwner permanently removes o: every effect cell's last-stored
// cleanup runs once, in cell order, and the cell store is released. Any
// still-pending effects for o are dropped. Setters and dispatchers bound
// to o become no-ops. Destroying an already-destroyed owner does nothing.
func (rt *Runtime) DestroyOwner(o *Owner) {
	if o.destroyed {
		return
	}
	if rt.active == o {
		panic(usageError("destroy owner during its own render"))
	}
	o.destroyed = true
	for _, c := range o.cells {
		ec, ok := c.(*effectCell)
		if !ok {
			continue
		}
		ec.pending = false
		if ec.cleanup != nil {
			run := ec.cleanup
			ec.cleanup = nil
			run()
		}
	}
	o.cells = nil
}

// nextCell advances the active owner's cursor and returns the cell at that
// position, creating it via create on the owner's first render. The want
// kind and the concrete type C must match what the position held on every
// earlier render.
func nextCell[C cell](rt *Runtime, want cellKind, create func() C) (c C, created bool) {
	o := rt.active
	if o == nil {
		panic(outsideRender())
	}
	idx := o.cursor
	o.cursor++
	if idx < len(o.cells) {
		existing := o.cells[idx]
		if existing.kind() != want {
			panic(usageErrorf("hook order violation at cell %d: expected %s cell, found %s cell", idx, want, existing.kind()))
		}
		c, ok := existing.(C)
		if !ok {
			panic(usageErrorf("hook type mismatch at cell %d: %s cell holds %T", idx, want, existing))
		}
		return c, false
	}
	if o.rendered {
		panic(usageError("rendered more hooks than the previous render"))
	}
	c = create()
	o.cells = append(o.cells, c)
	return c, true
}
