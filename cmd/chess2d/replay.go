// replay.go - Parallel script replay
package main

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/output"
	"github.com/lgbarn/chess2d-go/internal/script"
	"github.com/lgbarn/chess2d-go/internal/worker"
)

// runReplay replays every script file and writes the reports in argument
// order. It returns the number of scripts that failed to parse or stopped
// on an error.
func runReplay(cfg *config.Config, paths []string, numWorkers int) int {
	failed := 0
	scripts := make([]*script.Script, 0, len(paths))
	for _, path := range paths {
		s, err := script.ParseFile(path)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			failed++
			continue
		}
		scripts = append(scripts, s)
	}

	results := replayAll(cfg, scripts, numWorkers)

	writer := output.NewWriter(cfg.OutputFile, cfg)
	defer writer.Close()
	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", r.Error)
			failed++
		}
		writeReport(cfg, r)
		if err := writer.WriteGame(r.Game, nil); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing %s: %v\n", r.Script.Name, err)
			failed++
		}
	}
	return failed
}

// replayAll runs scripts through the worker pool and returns the results in
// submission order.
func replayAll(cfg *config.Config, scripts []*script.Script, numWorkers int) []worker.ProcessResult {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(scripts) {
		numWorkers = len(scripts)
	}

	bufferSize := len(scripts)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, worker.ReplayFunc(cfg))
	pool.Start()

	go func() {
		for i, s := range scripts {
			pool.Submit(worker.WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	return pool.Collect()
}

// writeReport lists each step's outcome when the board is drawn as text.
func writeReport(cfg *config.Config, r worker.ProcessResult) {
	if cfg.Output.Format != config.TextFormat {
		return
	}
	fmt.Fprintf(cfg.OutputFile, "== %s ==\n", r.Script.Name)
	for _, step := range r.Steps {
		if step.Step.Reset {
			fmt.Fprintf(cfg.OutputFile, "%d: reset\n", step.Step.Line)
			continue
		}
		fmt.Fprintf(cfg.OutputFile, "%d: %s\n", step.Step.Line, describe(step.Result))
	}
	fmt.Fprintf(cfg.OutputFile, "%d steps, %d rejected\n", len(r.Steps), script.Rejections(r.Steps))
}
