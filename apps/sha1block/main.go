//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/markkurossi/text/superscript"

	"github.com/markkurossi/sha1block/blockgen"
	"github.com/markkurossi/sha1block/env"
	"github.com/markkurossi/sha1block/sha1block"
	"github.com/markkurossi/sha1block/timing"
)

func main() {
	numBlocks := flag.Int("n", 1, "Number of generated blocks")
	seed := flag.String("seed", "", "Seed for generated blocks")
	initial := flag.String("state", "", "Initial state as 40 hex digits")
	trace := flag.Bool("trace", false, "Print registers after each step")
	fTiming := flag.Bool("timing", false, "Print timing report")
	workers := flag.Int("workers", runtime.NumCPU(),
		"Number of parallel streams in timing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	config := &env.Config{
		Seed:    []byte(*seed),
		Verbose: *verbose,
	}

	state := InitialState
	if len(*initial) > 0 {
		var err error
		state, err = ParseState(*initial)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := CheckBlockCount(*numBlocks); err != nil {
		log.Fatal(err)
	}

	var blocks []sha1block.Block
	if len(flag.Args()) > 0 {
		var err error
		blocks, err = ParseBlocks(flag.Args())
		if err != nil {
			log.Fatal(err)
		}
	} else {
		gen, err := blockgen.New(config)
		if err != nil {
			log.Fatal(err)
		}
		blocks = gen.Blocks(*numBlocks)
	}
	if config.Verbose {
		fmt.Printf("Blocks: %d\n", len(blocks))
		fmt.Printf("State : %s\n", FormatState(state))
	}

	if *fTiming {
		runTiming(os.Stdout, config, state, blocks, *workers)
		return
	}

	if *trace {
		state = traceBlocks(os.Stdout, state, blocks)
	} else {
		sha1block.Compress(&state, blocks)
	}
	fmt.Println(FormatState(state))
}

// traceBlocks prints the registers after each step of each block and
// returns the final state.
func traceBlocks(out io.Writer, state sha1block.State,
	blocks []sha1block.Block) sha1block.State {

	for idx := range blocks {
		fmt.Fprintf(out, "Block %d:\n", idx)
		state = sha1block.Trace(state, &blocks[idx],
			func(t int, r sha1block.Registers) {
				fmt.Fprintf(out, "  r%s\t%08x %08x %08x %08x %08x\n",
					superscript.Itoa(t), r.A, r.B, r.C, r.D, r.E)
			})
		fmt.Fprintf(out, "  %s\n", FormatState(state))
	}
	return state
}

// runTiming compresses the blocks as one stream and then as
// independent parallel streams, each with its own state. The stream
// sample is split into schedule expansion and full compression.
func runTiming(out io.Writer, config *env.Config, state sha1block.State,
	blocks []sha1block.Block, workers int) {

	if workers < 1 {
		workers = 1
	}
	size := uint64(len(blocks) * sha1block.BlockSize)
	t := timing.New()

	var w sha1block.Schedule
	for idx := range blocks {
		sha1block.Expand(&w, &blocks[idx])
	}
	expanded := time.Now()

	s := state
	sha1block.Compress(&s, blocks)
	sample := t.Sample("Stream", size)
	sample.SubSample("Expand", expanded, size)
	sample.SubSample("Compress", sample.End, size)
	if config.Verbose {
		fmt.Fprintf(out, "Stream: %s\n", FormatState(s))
	}

	durations := make([]time.Duration, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := time.Now()
			s := state
			sha1block.Compress(&s, blocks)
			durations[i] = time.Since(start)
		}(i)
	}
	wg.Wait()

	sample = t.Sample(fmt.Sprintf("Parallel\u00d7%d", workers),
		size*uint64(workers))
	for i, d := range durations {
		sample.AbsSubSample(fmt.Sprintf("Worker%s", superscript.Itoa(i)),
			d, size)
	}

	t.Print(out)
}
