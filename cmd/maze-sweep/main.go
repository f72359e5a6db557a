package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"prims-maze/internal/core"
	"prims-maze/internal/maze"
)

type scenario struct {
	cols, rows int
	rooms      int
	roomW      int
	roomH      int
	seed       int64
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d rooms=%d (%dx%d) seed=%d", s.cols, s.rows, s.rooms, s.roomW, s.roomH, s.seed)
}

type scenarioResult struct {
	scenario    scenario
	err         error
	roomsPlaced int
	deadEnds    int
	maxDistance int
	elapsed     time.Duration
}

func main() {
	seeds := flag.Int("seeds", 25, "seeds to run per layout")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	sizes := []struct{ cols, rows int }{
		{cols: 10, rows: 10},
		{cols: 40, rows: 30},
		{cols: 80, rows: 60},
		{cols: 7, rows: 3},
	}
	roomCounts := []int{0, 2, 5, 10}
	roomDims := []struct{ w, h int }{
		{w: 2, h: 2},
		{w: 5, h: 5},
		{w: 12, h: 4},
	}

	var scenarios []scenario
	for _, size := range sizes {
		for _, rooms := range roomCounts {
			for _, dim := range roomDims {
				for seed := 1; seed <= *seeds; seed++ {
					scenarios = append(scenarios, scenario{
						cols:  size.cols,
						rows:  size.rows,
						rooms: rooms,
						roomW: dim.w,
						roomH: dim.h,
						seed:  int64(seed),
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d layouts (%d workers)\n", len(scenarios), *workers)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScenario(s)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range scenarios {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	failures := 0
	kinds := mapset.New[string]()
	requested, placed := 0, 0
	for res := range results {
		all = append(all, res)
		requested += res.scenario.rooms
		placed += res.roomsPlaced
		if res.err != nil {
			failures++
			kinds.Put(res.err.Error())
			fmt.Printf("FAIL %s: %v\n", res.scenario, res.err)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].elapsed > all[j].elapsed })
	elapsed := time.Since(start)

	fmt.Printf("\nSlowest 5 layouts (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) %s took %s deadEnds=%d maxDist=%d rooms=%d/%d\n",
			i+1, res.scenario, res.elapsed.Round(time.Microsecond), res.deadEnds, res.maxDistance, res.roomsPlaced, res.scenario.rooms)
	}

	fmt.Printf("\nRooms placed: %d of %d requested\n", placed, requested)
	if failures == 0 {
		fmt.Printf("All %d mazes valid.\n", len(all))
		return
	}
	fmt.Printf("%d of %d mazes failed validation (%d distinct errors):\n", failures, len(all), kinds.Size())
	kinds.Each(func(msg string) {
		fmt.Printf("  %s\n", msg)
	})
	os.Exit(1)
}

func runScenario(s scenario) scenarioResult {
	opts := maze.Options{
		Cols:       s.cols,
		Rows:       s.rows,
		Rooms:      s.rooms,
		RoomWidth:  s.roomW,
		RoomHeight: s.roomH,
		Start:      -1,
	}
	began := time.Now()
	m := maze.New(opts, core.NewRNG(s.seed).Source())
	m.Run()
	took := time.Since(began)

	return scenarioResult{
		scenario:    s,
		err:         maze.Validate(m),
		roomsPlaced: m.RoomsPlaced(),
		deadEnds:    countDeadEnds(m),
		maxDistance: m.MaxDistance(),
		elapsed:     took,
	}
}

// countDeadEnds counts cells enclosed on three sides.
func countDeadEnds(m *maze.Model) int {
	total := 0
	for i := range m.Cells() {
		closed := 0
		for _, wall := range m.Walls(i) {
			if wall {
				closed++
			}
		}
		if closed == 3 {
			total++
		}
	}
	return total
}
