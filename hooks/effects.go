package hooks

// EffectKind selects the commit phase an effect fires in. The committer
// flushes kinds in a fixed order per commit: pre-mutation, then its host
// mutation, then post-mutation, then deferred once the paint-critical path
// is done.
type EffectKind uint8

const (
	EffectPreMutation EffectKind = iota
	EffectPostMutation
	EffectDeferred

	effectKindCount = 3
)

func (k EffectKind) String() string {
	switch k {
	case EffectPreMutation:
		return "pre-mutation"
	case EffectPostMutation:
		return "post-mutation"
	case EffectDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Cleanup undoes one effect run. A nil Cleanup means nothing to undo.
type Cleanup func()

// EffectFunc is an effect body. Its return value, if non-nil, runs before
// the next run of the same cell and once more at owner destruction.
type EffectFunc func() Cleanup

type effectCell struct {
	owner   *Owner
	ekind   EffectKind
	fn      EffectFunc
	deps    Deps
	cleanup Cleanup
	pending bool
}

func (c *effectCell) kind() cellKind { return kindEffect }

// UseEffect declares an effect cell. When deps changes (or deps is nil)
// the cell is marked pending for its kind's flush; fn never runs during
// the render itself. kind is part of the cell's shape and must not change
// across renders.
func UseEffect(rt *Runtime, fn EffectFunc, deps Deps, kind EffectKind) {
	if kind >= effectKindCount {
		panic(usageErrorf("unknown effect kind %d", kind))
	}
	c, created := nextCell(rt, kindEffect, func() *effectCell {
		return &effectCell{owner: rt.active, ekind: kind}
	})
	if !created && c.ekind != kind {
		panic(usageErrorf("effect kind changed across renders: was %s, now %s", c.ekind, kind))
	}
	if !created && !c.deps.changed(deps) {
		return
	}
	c.fn = fn
	c.deps = deps
	if !c.pending {
		c.pending = true
		rt.pending[kind] = append(rt.pending[kind], c)
	}
}

// FlushEffects drains the pending list for one kind in registration order.
// For each cell the previous run's cleanup fires first, then the new body;
// a callable return value becomes the cleanup for next time. Cells whose
// owner was destroyed since scheduling are skipped (their cleanups already
// ran). Panics from effect bodies and cleanups propagate to the committer.
func (rt *Runtime) FlushEffects(kind EffectKind) {
	if kind >= effectKindCount {
		panic(usageErrorf("unknown effect kind %d", kind))
	}
	if rt.active != nil {
		panic(usageError("flush effects during a render"))
	}
	queue := rt.pending[kind]
	rt.pending[kind] = nil
	for _, c := range queue {
		if !c.pending || c.owner.destroyed {
			continue
		}
		c.pending = false
		if c.cleanup != nil {
			run := c.cleanup
			c.cleanup = nil
			run()
		}
		c.cleanup = c.fn()
	}
}
