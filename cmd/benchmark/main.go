package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/loop"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkUpdates(true)
	benchmarkMemoHits(true)
	benchmarkEffectChurn(true)
}

var (
	cc    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

// One dirty component per tick: C components mounted, each carrying H
// state cells, a single setter poked per iteration.
func benchmarkUpdates(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Update + Re-render")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, c := range cc {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			l := loop.New()
			var poke *hooks.Setter[int]
			for i := 0; i < c; i++ {
				l.Mount("bench", func(rt *hooks.Runtime) {
					var last *hooks.Setter[int]
					for j := 0; j < h; j++ {
						_, last = hooks.UseState(rt, 0)
					}
					poke = last
				})
			}
			l.Tick()

			for i := 0; i < iters; i++ {
				start := time.Now()
				poke.Update(func(x int) int { return x + 1 })
				l.Tick()
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("update: %d * %d", c, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// Re-renders in which every memo dep is unchanged, so each cell returns
// its cached value.
func benchmarkMemoHits(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Memo Cache Hits")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		l := loop.New()
		var bump *hooks.Setter[int]
		l.Mount("memos", func(rt *hooks.Runtime) {
			_, bump = hooks.UseState(rt, 0)
			for j := 0; j < h; j++ {
				hooks.UseMemo(rt, func() int { return j * j }, hooks.Deps{j})
			}
		})
		l.Tick()

		for i := 0; i < iters; i++ {
			start := time.Now()
			bump.Update(func(x int) int { return x + 1 })
			l.Tick()
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, fmt.Sprintf("memo hits: %d", h), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

// Effects whose deps change every render: cleanup then refire per cell
// per tick, spread across the three phases.
func benchmarkEffectChurn(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Effect Churn")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	kinds := []hooks.EffectKind{
		hooks.EffectPreMutation,
		hooks.EffectPostMutation,
		hooks.EffectDeferred,
	}

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		l := loop.New()
		var bump *hooks.Setter[int]
		l.Mount("effects", func(rt *hooks.Runtime) {
			v, set := hooks.UseState(rt, 0)
			bump = set
			for j := 0; j < h; j++ {
				hooks.UseEffect(rt, func() hooks.Cleanup {
					return func() {}
				}, hooks.Deps{v}, kinds[j%len(kinds)])
			}
		})
		l.Tick()

		for i := 0; i < iters; i++ {
			start := time.Now()
			bump.Update(func(x int) int { return x + 1 })
			l.Tick()
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, fmt.Sprintf("effect churn: %d", h), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}
