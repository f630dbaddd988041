package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"knot-chain/internal/batch"
	"knot-chain/internal/config"
)

const sampleInput = "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"

func resetGlobals(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	runKnots = nil
	runWorkers = 0
	runChecked = false
	runFormat = "text"
	t.Cleanup(func() {
		runKnots = nil
		runFormat = "text"
	})
}

func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, out
}

func TestRunSimulationFromStdin(t *testing.T) {
	resetGlobals(t)
	cmd, out := newTestCmd(sampleInput)

	if err := runSimulation(cmd, nil); err != nil {
		t.Fatalf("runSimulation failed: %v", err)
	}
	want := "knots=2 visited=13\nknots=10 visited=1\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestRunSimulationFromFileAsJSON(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "moves.txt")
	if err := os.WriteFile(path, []byte("R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runKnots = []int{10}
	runChecked = true
	runFormat = "json"
	cmd, out := newTestCmd("")

	if err := runSimulation(cmd, []string{path}); err != nil {
		t.Fatalf("runSimulation failed: %v", err)
	}
	var results []batch.Result
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(results) != 1 || results[0].Knots != 10 || results[0].Visited != 36 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestRunSimulationYAML(t *testing.T) {
	resetGlobals(t)
	runKnots = []int{2}
	runFormat = "yaml"
	cmd, out := newTestCmd(sampleInput)

	if err := runSimulation(cmd, []string{"-"}); err != nil {
		t.Fatalf("runSimulation failed: %v", err)
	}
	var results []batch.Result
	if err := yaml.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if len(results) != 1 || results[0].Visited != 13 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestRunSimulationErrors(t *testing.T) {
	resetGlobals(t)
	cmd, _ := newTestCmd("R 4\nZ 1\n")
	err := runSimulation(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected decode error naming line 2, got %v", err)
	}

	resetGlobals(t)
	runKnots = []int{0}
	cmd, _ = newTestCmd(sampleInput)
	if err := runSimulation(cmd, nil); err == nil {
		t.Fatal("expected error for zero-length chain")
	}

	resetGlobals(t)
	runFormat = "xml"
	cmd, _ = newTestCmd(sampleInput)
	if err := runSimulation(cmd, nil); err == nil {
		t.Fatal("expected error for unknown format")
	}

	resetGlobals(t)
	cmd, _ = newTestCmd("")
	if err := runSimulation(cmd, []string{filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestRandomRoundTripsThroughRun(t *testing.T) {
	resetGlobals(t)
	randomSeed, randomCount, randomMaxStep = 7, 50, 9
	gen, stream := newTestCmd("")
	if err := randomCmd.RunE(gen, nil); err != nil {
		t.Fatalf("random failed: %v", err)
	}
	if lines := strings.Count(stream.String(), "\n"); lines != 50 {
		t.Fatalf("expected 50 commands, got %d", lines)
	}

	again, stream2 := newTestCmd("")
	if err := randomCmd.RunE(again, nil); err != nil {
		t.Fatalf("random failed: %v", err)
	}
	if stream.String() != stream2.String() {
		t.Fatal("same seed must produce the same stream")
	}

	cmd, out := newTestCmd(stream.String())
	if err := runSimulation(cmd, nil); err != nil {
		t.Fatalf("runSimulation failed on generated stream: %v", err)
	}
	if !strings.HasPrefix(out.String(), "knots=2 visited=") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestParamsCommand(t *testing.T) {
	resetGlobals(t)
	paramsSim = "rope2"
	paramsSet = []string{"w=32"}
	t.Cleanup(func() {
		paramsSim = "rope"
		paramsSet = nil
	})
	cmd, out := newTestCmd("")
	if err := paramsCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("params failed: %v", err)
	}
	for _, want := range []string{"Chain:", "knots", " 2\n", "w            32"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}

	paramsSet = []string{"broken"}
	if err := paramsCmd.RunE(cmd, nil); err == nil {
		t.Fatal("expected error for malformed override")
	}
	paramsSet = nil
	paramsSim = "missing"
	if err := paramsCmd.RunE(cmd, nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}
