// Package loop is a reference reconciler and committer for the hooks
// runtime: it mounts named components, tracks which owners have pending
// updates, renders them, and drives the effect flush phases around a host
// commit callback.
package loop

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/hookparty/hooks"
)

// RenderFunc is one component body. It may only call hook functions on the
// runtime it is handed, and must call the same hooks in the same order on
// every invocation.
type RenderFunc func(rt *hooks.Runtime)

// Component is the loop's handle for one mounted component instance.
type Component struct {
	id      uint64
	name    string
	owner   *hooks.Owner
	fn      RenderFunc
	mounted bool
}

func (c *Component) Name() string { return c.name }

// ID is a stable identifier derived from the component name and its mount
// sequence number, usable as a log or trace key.
func (c *Component) ID() uint64 { return c.id }

const maxRenderPasses = 1000

// RenderLoop owns one hooks.Runtime and a flat set of mounted components.
// It is single-threaded like the runtime it drives.
type RenderLoop struct {
	rt      *hooks.Runtime
	byOwner map[*hooks.Owner]*Component
	order   []*Component
	dirty   mapset.Set[*Component]
	seq     uint64
	ticking bool

	// OnWake fires when the loop goes from settled to having dirty
	// components, so the embedder can schedule a Tick.
	OnWake func()

	// OnCommit performs the host-target mutation for one tick. It runs
	// between the pre-mutation and post-mutation effect flushes.
	OnCommit func()
}

func New() *RenderLoop {
	l := &RenderLoop{
		byOwner: map[*hooks.Owner]*Component{},
		dirty:   mapset.NewSet[*Component](),
	}
	l.rt = hooks.New(l.scheduleRerender)
	return l
}

// Runtime exposes the underlying hooks runtime, mainly so tests and
// benchmarks can drive it directly.
func (l *RenderLoop) Runtime() *hooks.Runtime { return l.rt }

// Mount registers a component instance and marks it for rendering on the
// next tick. Multiple instances may share a name; each gets its own owner
// and id.
func (l *RenderLoop) Mount(name string, fn RenderFunc) *Component {
	h := xxhash.New()
	h.WriteString(name)
	var seqBuf [8]byte
	binary.LittleEndian.PutUint64(seqBuf[:], l.seq)
	h.Write(seqBuf[:])
	l.seq++

	c := &Component{
		id:      h.Sum64(),
		name:    name,
		owner:   l.rt.NewOwner(),
		fn:      fn,
		mounted: true,
	}
	l.byOwner[c.owner] = c
	l.order = append(l.order, c)
	l.markDirty(c)
	return c
}

// Unmount permanently removes a component: its owner is destroyed, which
// runs every stored effect cleanup. Unmounting twice is a no-op.
func (l *RenderLoop) Unmount(c *Component) {
	if !c.mounted {
		return
	}
	c.mounted = false
	l.dirty.Remove(c)
	delete(l.byOwner, c.owner)
	for i, oc := range l.order {
		if oc == c {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.rt.DestroyOwner(c.owner)
}

func (l *RenderLoop) scheduleRerender(o *hooks.Owner) {
	c := l.byOwner[o]
	if c == nil || !c.mounted {
		return
	}
	l.markDirty(c)
}

func (l *RenderLoop) markDirty(c *Component) {
	wasSettled := l.dirty.Cardinality() == 0
	if !l.dirty.Add(c) {
		return
	}
	if wasSettled && !l.ticking && l.OnWake != nil {
		l.OnWake()
	}
}

// Dirty reports whether any component needs rendering.
func (l *RenderLoop) Dirty() bool { return l.dirty.Cardinality() > 0 }

// Tick runs one frame: it renders dirty components (in mount order,
// repeating until no renders dirty further components), then commits by
// flushing pre-mutation effects, calling OnCommit, flushing post-mutation
// effects, and finally draining deferred effects. Effects that enqueue new
// updates leave the loop dirty for the next tick. Returns the number of
// component renders performed.
func (l *RenderLoop) Tick() int {
	l.ticking = true
	defer func() { l.ticking = false }()

	renders := 0
	for pass := 0; l.dirty.Cardinality() > 0; pass++ {
		if pass == maxRenderPasses {
			panic(fmt.Sprintf("loop: render did not settle after %d passes", maxRenderPasses))
		}
		for _, c := range l.order {
			if !l.dirty.Contains(c) {
				continue
			}
			l.dirty.Remove(c)
			l.rt.BeginRender(c.owner)
			c.fn(l.rt)
			l.rt.EndRender()
			renders++
		}
	}

	l.rt.FlushEffects(hooks.EffectPreMutation)
	if l.OnCommit != nil {
		l.OnCommit()
	}
	l.rt.FlushEffects(hooks.EffectPostMutation)
	l.rt.FlushEffects(hooks.EffectDeferred)

	if l.dirty.Cardinality() > 0 && l.OnWake != nil {
		l.OnWake()
	}
	return renders
}
