package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/loop"
)

type benchmarkTestConfig struct {
	name       string
	components int
	stateCells int
	memoCells  int
	effects    int
	iterations int
}

func main() {
	log.Print("Starting hookparty lifecycle benchmark, please wait...")
	defer log.Print("Finished hookparty lifecycle benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:       "small component",
			components: 10,
			stateCells: 2,
			memoCells:  2,
			effects:    1,
			iterations: 50000,
		},
		{
			name:       "form heavy",
			components: 100,
			stateCells: 8,
			memoCells:  4,
			effects:    2,
			iterations: 5000,
		},
		{
			name:       "large page",
			components: 1000,
			stateCells: 4,
			memoCells:  2,
			effects:    3,
			iterations: 500,
		},
		{
			name:       "effect dominated",
			components: 100,
			stateCells: 1,
			memoCells:  0,
			effects:    8,
			iterations: 5000,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "components", "cells/component", "nTimes", "time", "renders/s",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		// warm up
		runLifecycle(cfg)

		best := time.Hour
		var renders int
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, testRepeats)
			start := time.Now()
			renders = runLifecycle(cfg)
			if duration := time.Since(start); duration < best {
				best = duration
			}
		}

		rendersPerSec := int64(float64(renders) / best.Seconds())
		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.components)),
			fmt.Sprintf("%d", cfg.stateCells+cfg.memoCells+cfg.effects),
			humanize.Comma(int64(cfg.iterations)),
			best.String(),
			humanize.Comma(rendersPerSec),
		})
	}

	table.Render()
}

// runLifecycle mounts the configured components, drives iterations of
// update+tick round-robin across them, then unmounts everything. Returns
// the total number of component renders performed.
func runLifecycle(cfg benchmarkTestConfig) int {
	l := loop.New()

	setters := make([]*hooks.Setter[int], cfg.components)
	comps := make([]*loop.Component, cfg.components)
	for i := 0; i < cfg.components; i++ {
		i := i
		comps[i] = l.Mount(fmt.Sprintf("component-%d", i), func(rt *hooks.Runtime) {
			v, set := hooks.UseState(rt, 0)
			setters[i] = set
			for s := 1; s < cfg.stateCells; s++ {
				hooks.UseState(rt, s)
			}
			for m := 0; m < cfg.memoCells; m++ {
				hooks.UseMemo(rt, func() int { return v * m }, hooks.Deps{v})
			}
			for e := 0; e < cfg.effects; e++ {
				hooks.UseEffect(rt, func() hooks.Cleanup {
					return func() {}
				}, hooks.Deps{v}, hooks.EffectDeferred)
			}
		})
	}
	renders := l.Tick()

	for i := 0; i < cfg.iterations; i++ {
		setters[i%cfg.components].Update(func(x int) int { return x + 1 })
		renders += l.Tick()
	}

	for _, c := range comps {
		l.Unmount(c)
	}
	return renders
}
