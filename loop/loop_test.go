package loop_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/loop"
)

// a mounted component renders on the next tick and settles
func TestMountRendersOnTick(t *testing.T) {
	l := loop.New()

	renders := 0
	l.Mount("hello", func(rt *hooks.Runtime) {
		renders++
	})
	assert.True(t, l.Dirty())

	assert.Equal(t, 1, l.Tick())
	assert.Equal(t, 1, renders)
	assert.False(t, l.Dirty())

	// nothing changed, nothing to render
	assert.Zero(t, l.Tick())
	assert.Equal(t, 1, renders)
}

// setter writes between ticks re-render only the owning component
func TestSetDirtiesOnlyOwner(t *testing.T) {
	l := loop.New()

	var set *hooks.Setter[int]
	aRenders, bRenders := 0, 0
	l.Mount("a", func(rt *hooks.Runtime) {
		aRenders++
		_, set = hooks.UseState(rt, 0)
	})
	l.Mount("b", func(rt *hooks.Runtime) {
		bRenders++
		hooks.UseState(rt, 0)
	})
	l.Tick()
	require.Equal(t, 1, aRenders)
	require.Equal(t, 1, bRenders)

	set.Set(5)
	l.Tick()
	assert.Equal(t, 2, aRenders)
	assert.Equal(t, 1, bRenders)
}

// updates queued between ticks batch into one render
func TestBatchedUpdatesSingleRender(t *testing.T) {
	l := loop.New()

	var seen []int
	var set *hooks.Setter[int]
	l.Mount("counter", func(rt *hooks.Runtime) {
		v, s := hooks.UseState(rt, 0)
		set = s
		seen = append(seen, v)
	})
	l.Tick()

	set.Update(func(x int) int { return x + 1 })
	set.Update(func(x int) int { return x + 1 })
	set.Update(func(x int) int { return x * 10 })
	assert.Equal(t, 1, l.Tick())
	assert.Equal(t, []int{0, 20}, seen)
}

// OnWake fires once when the loop becomes dirty, not per update
func TestOnWakeCoalesces(t *testing.T) {
	l := loop.New()

	var set *hooks.Setter[int]
	l.Mount("c", func(rt *hooks.Runtime) {
		_, set = hooks.UseState(rt, 0)
	})
	l.Tick()

	wakes := 0
	l.OnWake = func() { wakes++ }
	set.Set(1)
	set.Set(2)
	set.Set(3)
	assert.Equal(t, 1, wakes)

	l.Tick()
	set.Set(4)
	assert.Equal(t, 2, wakes)
}

// the commit callback lands between the pre- and post-mutation flushes
func TestCommitOrdering(t *testing.T) {
	l := loop.New()

	var trace []string
	l.OnCommit = func() { trace = append(trace, "commit") }
	l.Mount("c", func(rt *hooks.Runtime) {
		hooks.UseEffect(rt, func() hooks.Cleanup {
			trace = append(trace, "pre")
			return nil
		}, hooks.Deps{}, hooks.EffectPreMutation)
		hooks.UseEffect(rt, func() hooks.Cleanup {
			trace = append(trace, "post")
			return nil
		}, hooks.Deps{}, hooks.EffectPostMutation)
		hooks.UseEffect(rt, func() hooks.Cleanup {
			trace = append(trace, "deferred")
			return nil
		}, hooks.Deps{}, hooks.EffectDeferred)
	})
	l.Tick()

	assert.Equal(t, []string{"pre", "commit", "post", "deferred"}, trace)
}

// an effect that sets state leaves the loop dirty for the next tick
func TestEffectDirtiesNextTick(t *testing.T) {
	l := loop.New()

	var values []int
	l.Mount("c", func(rt *hooks.Runtime) {
		v, set := hooks.UseState(rt, 0)
		values = append(values, v)
		hooks.UseEffect(rt, func() hooks.Cleanup {
			if v == 0 {
				set.Set(1)
			}
			return nil
		}, hooks.Deps{v}, hooks.EffectDeferred)
	})

	wakes := 0
	l.OnWake = func() { wakes++ }
	l.Tick()
	assert.True(t, l.Dirty())
	assert.Equal(t, 1, wakes)

	l.Tick()
	assert.False(t, l.Dirty())
	assert.Equal(t, []int{0, 1}, values)
}

// unmounting runs effect cleanups and drops later writes
func TestUnmountCleansUp(t *testing.T) {
	l := loop.New()

	cleanups := 0
	var set *hooks.Setter[int]
	c := l.Mount("c", func(rt *hooks.Runtime) {
		_, set = hooks.UseState(rt, 0)
		hooks.UseEffect(rt, func() hooks.Cleanup {
			return func() { cleanups++ }
		}, hooks.Deps{}, hooks.EffectDeferred)
	})
	l.Tick()

	l.Unmount(c)
	assert.Equal(t, 1, cleanups)

	set.Set(9)
	assert.False(t, l.Dirty())
	assert.Zero(t, l.Tick())

	l.Unmount(c)
	assert.Equal(t, 1, cleanups)
}

// two instances of the same component keep separate state and distinct ids
func TestInstancesAreIndependent(t *testing.T) {
	l := loop.New()

	counter := func(into *[]int, bump **hooks.Setter[int]) loop.RenderFunc {
		return func(rt *hooks.Runtime) {
			v, set := hooks.UseState(rt, 0)
			*into = append(*into, v)
			*bump = set
		}
	}

	var aSeen, bSeen []int
	var aSet, bSet *hooks.Setter[int]
	a := l.Mount("counter", counter(&aSeen, &aSet))
	b := l.Mount("counter", counter(&bSeen, &bSet))
	require.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "counter", a.Name())
	l.Tick()

	aSet.Update(func(x int) int { return x + 10 })
	l.Tick()
	assert.Equal(t, []int{0, 10}, aSeen)
	assert.Equal(t, []int{0}, bSeen)
}

// renders cascade within one tick until every owner settles
func TestCascadingRendersSettle(t *testing.T) {
	l := loop.New()

	var downstream *hooks.Setter[int]
	var got []string
	l.Mount("upstream", func(rt *hooks.Runtime) {
		v, _ := hooks.UseState(rt, 1)
		got = append(got, fmt.Sprintf("up:%d", v))
	})
	l.Mount("downstream", func(rt *hooks.Runtime) {
		v, set := hooks.UseState(rt, 0)
		downstream = set
		got = append(got, fmt.Sprintf("down:%d", v))
	})
	l.Tick()

	// a render-time write to another mounted owner is picked up in the
	// same tick's render phase
	var relay *hooks.Setter[int]
	relayed := false
	l.Mount("relay", func(rt *hooks.Runtime) {
		_, relay = hooks.UseState(rt, 0)
		if !relayed {
			relayed = true
			downstream.Set(7)
		}
	})
	_ = relay

	renders := l.Tick()
	assert.Equal(t, 2, renders)
	assert.Equal(t, []string{"up:1", "down:0", "down:7"}, got)
}
