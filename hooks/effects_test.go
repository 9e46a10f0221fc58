package hooks_test

import (
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/stretchr/testify/assert"
)

func flushAll(rt *hooks.Runtime) {
	rt.FlushEffects(hooks.EffectPreMutation)
	rt.FlushEffects(hooks.EffectPostMutation)
	rt.FlushEffects(hooks.EffectDeferred)
}

// effects never run during the render pass, only at flush
func TestEffectRunsAtFlushNotRender(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	ran := 0
	render(rt, o, func() {
		hooks.UseEffect(rt, func() hooks.Cleanup {
			ran++
			return nil
		}, hooks.Deps{}, hooks.EffectDeferred)
	})
	assert.Zero(t, ran)

	rt.FlushEffects(hooks.EffectDeferred)
	assert.Equal(t, 1, ran)
}

// deps gate refiring: 1, 1, 2 runs the body after the first and third renders
func TestEffectDepsGate(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	var trace []string
	renderWith := func(a int) {
		render(rt, o, func() {
			hooks.UseEffect(rt, func() hooks.Cleanup {
				trace = append(trace, "body")
				return func() { trace = append(trace, "cleanup") }
			}, hooks.Deps{a}, hooks.EffectDeferred)
		})
		rt.FlushEffects(hooks.EffectDeferred)
	}

	renderWith(1)
	assert.Equal(t, []string{"body"}, trace)

	renderWith(1)
	assert.Equal(t, []string{"body"}, trace)

	renderWith(2)
	assert.Equal(t, []string{"body", "cleanup", "body"}, trace)
}

// nil deps refire the effect on every render
func TestEffectNilDepsAlwaysRefire(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	ran := 0
	body := func() {
		hooks.UseEffect(rt, func() hooks.Cleanup {
			ran++
			return nil
		}, nil, hooks.EffectPostMutation)
	}

	render(rt, o, body)
	rt.FlushEffects(hooks.EffectPostMutation)
	render(rt, o, body)
	rt.FlushEffects(hooks.EffectPostMutation)
	assert.Equal(t, 2, ran)
}

// each kind drains only in its own flush, in registration order
func TestEffectPhaseOrdering(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	var trace []string
	note := func(s string) hooks.EffectFunc {
		return func() hooks.Cleanup {
			trace = append(trace, s)
			return nil
		}
	}

	render(rt, o, func() {
		hooks.UseEffect(rt, note("deferred-a"), hooks.Deps{}, hooks.EffectDeferred)
		hooks.UseEffect(rt, note("pre-a"), hooks.Deps{}, hooks.EffectPreMutation)
		hooks.UseEffect(rt, note("post-a"), hooks.Deps{}, hooks.EffectPostMutation)
		hooks.UseEffect(rt, note("pre-b"), hooks.Deps{}, hooks.EffectPreMutation)
	})

	rt.FlushEffects(hooks.EffectPreMutation)
	trace = append(trace, "mutate")
	rt.FlushEffects(hooks.EffectPostMutation)
	trace = append(trace, "paint")
	rt.FlushEffects(hooks.EffectDeferred)

	assert.Equal(t,
		[]string{"pre-a", "pre-b", "mutate", "post-a", "paint", "deferred-a"},
		trace)
}

// a cell re-rendered twice before a flush fires once, with the latest body
func TestEffectPendingDedupe(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	var got []int
	renderWith := func(a int) {
		render(rt, o, func() {
			hooks.UseEffect(rt, func() hooks.Cleanup {
				got = append(got, a)
				return nil
			}, hooks.Deps{a}, hooks.EffectDeferred)
		})
	}

	renderWith(1)
	renderWith(2)
	rt.FlushEffects(hooks.EffectDeferred)
	assert.Equal(t, []int{2}, got)
}

// destroying an owner runs every last-stored cleanup once, in cell order
func TestDestroyRunsCleanups(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	var trace []string
	render(rt, o, func() {
		hooks.UseEffect(rt, func() hooks.Cleanup {
			return func() { trace = append(trace, "first") }
		}, hooks.Deps{}, hooks.EffectDeferred)
		hooks.UseState(rt, 0)
		hooks.UseEffect(rt, func() hooks.Cleanup {
			return func() { trace = append(trace, "second") }
		}, hooks.Deps{}, hooks.EffectPostMutation)
	})
	flushAll(rt)

	rt.DestroyOwner(o)
	assert.Equal(t, []string{"first", "second"}, trace)

	rt.DestroyOwner(o)
	assert.Equal(t, []string{"first", "second"}, trace)
}

// effects still pending when the owner is destroyed never fire
func TestDestroyDropsPendingEffects(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	ran := 0
	render(rt, o, func() {
		hooks.UseEffect(rt, func() hooks.Cleanup {
			ran++
			return nil
		}, hooks.Deps{}, hooks.EffectDeferred)
	})
	rt.DestroyOwner(o)
	rt.FlushEffects(hooks.EffectDeferred)
	assert.Zero(t, ran)
}

// an effect cell cannot change phase across renders
func TestEffectKindChange(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	render(rt, o, func() {
		hooks.UseEffect(rt, func() hooks.Cleanup { return nil }, nil, hooks.EffectDeferred)
	})
	rt.FlushEffects(hooks.EffectDeferred)

	rt.BeginRender(o)
	assert.PanicsWithError(t,
		"effect kind changed across renders: was deferred, now pre-mutation",
		func() {
			hooks.UseEffect(rt, func() hooks.Cleanup { return nil }, nil, hooks.EffectPreMutation)
		})
}

// flushing while a render is in progress is a usage error
func TestFlushDuringRender(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	rt.BeginRender(o)
	assert.PanicsWithError(t, "flush effects during a render", func() {
		rt.FlushEffects(hooks.EffectDeferred)
	})
	rt.EndRender()
}

// cleanup for a refiring effect runs strictly before the new body
func TestCleanupBeforeRefire(t *testing.T) {
	rt := hooks.New(nil)
	o := rt.NewOwner()

	var trace []string
	renderWith := func(a int) {
		render(rt, o, func() {
			hooks.UseEffect(rt, func() hooks.Cleanup {
				trace = append(trace, "body")
				return func() { trace = append(trace, "cleanup") }
			}, nil, hooks.EffectPreMutation)
		})
		rt.FlushEffects(hooks.EffectPreMutation)
	}

	renderWith(1)
	renderWith(2)
	assert.Equal(t, []string{"body", "cleanup", "body"}, trace)
}
