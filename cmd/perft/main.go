//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command perft builds the attack tables and runs a move-count (perft)
// traversal from a given position, the standard smoke test for a move
// generator: the reported node counts at each depth are checked by hand
// against published reference values.
package main

import (
	"context"
	"flag"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/magicmove/internal/attacks"
	"github.com/frankkopp/magicmove/internal/config"
	"github.com/frankkopp/magicmove/internal/logging"
	"github.com/frankkopp/magicmove/internal/movegen"
	"github.com/frankkopp/magicmove/internal/notation"
	"github.com/frankkopp/magicmove/internal/position"
	"github.com/frankkopp/magicmove/internal/util"

	. "github.com/frankkopp/magicmove/internal/types"
)

// out groups large node counts for readability (e.g. 119.060.324).
var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", "", "FEN of the position to search; defaults to the standard starting position")
	depth := flag.Int("depth", 0, "perft depth; falls back to the config file's Perft.Depth")
	workers := flag.Int("workers", 0, "number of goroutines to divide the root moves across; falls back to the config file's Perft.Workers")
	seed := flag.Uint64("seed", 0, "magic-number search seed; falls back to the config file's Magic.Seed")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	log := logging.GetLog()

	magicSeed := *seed
	if magicSeed == 0 {
		magicSeed = uint64(config.Settings.Magic.Seed)
	}

	d := *depth
	if d == 0 {
		d = config.Settings.Perft.Depth
	}

	w := *workers
	if w == 0 {
		w = config.Settings.Perft.Workers
	}

	start := time.Now()
	tables, err := attacks.BuildTables(magicSeed, config.Settings.Magic.MaxAttempts)
	if err != nil {
		log.Errorf("could not build attack tables: %v", err)
		os.Exit(1)
	}
	log.Infof("built attack tables in %s", time.Since(start))
	log.Debugf("memory: %s", util.MemStat())

	var pos *position.Position
	if *fen == "" {
		pos = position.NewStartingPosition()
	} else {
		pos, err = position.NewPositionFromFEN(*fen)
		if err != nil {
			log.Errorf("could not parse FEN %q: %v", *fen, err)
			os.Exit(1)
		}
	}
	log.Infof("perft depth %d on %s", d, pos.FEN())

	searchStart := time.Now()
	var nodes uint64
	if *divide {
		nodes = runDivide(pos, tables, d, w)
	} else {
		nodes = movegen.Perft(pos, tables, d)
	}
	elapsed := time.Since(searchStart)

	_, _ = out.Printf("Nodes: %d\n", nodes)
	_, _ = out.Printf("Time: %s\n", elapsed)
	_, _ = out.Printf("Nps: %d\n", util.Nps(nodes, elapsed))

	log.Debug(util.GcWithStats())
}

// runDivide runs the depth-1 root split sequentially but computes each
// root move's subtree concurrently, bounded to w in-flight goroutines
// via a weighted semaphore.
func runDivide(pos *position.Position, tables *attacks.Tables, depth, workers int) uint64 {
	defer util.TimeTrack(time.Now(), "perft divide")

	var buf movegen.MoveBuffer
	movegen.Generate(pos, tables, &buf)

	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	counts := make([]uint64, buf.Count)
	moves := make([]MoveCode, buf.Count)
	copy(moves, buf.Moves[:buf.Count])

	done := make(chan struct{}, buf.Count)
	for i := 0; i < buf.Count; i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			counts[i] = 0
			done <- struct{}{}
			continue
		}
		go func() {
			defer sem.Release(1)
			defer func() { done <- struct{}{} }()
			child := *pos
			child.Apply(moves[i])
			if depth <= 1 {
				counts[i] = 1
				return
			}
			counts[i] = movegen.Perft(&child, tables, depth-1)
		}()
	}
	for i := 0; i < buf.Count; i++ {
		<-done
	}

	order := make([]int, buf.Count)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return moves[order[a]] < moves[order[b]] })

	var total uint64
	for _, i := range order {
		_, _ = out.Printf("%s: %d\n", notation.MoveToUci(moves[i]), counts[i])
		total += counts[i]
	}
	return total
}
