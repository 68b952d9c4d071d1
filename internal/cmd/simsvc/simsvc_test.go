package simsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"monster_arena/internal/combat"
	"monster_arena/internal/config"
	apperrors "monster_arena/internal/errors"
	"monster_arena/internal/species"
	"monster_arena/internal/team"
	"monster_arena/internal/util"
)

func writeMatch(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write match: %v", err)
	}
	return path
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("MONSTER_ARENA_RUNS", "5")
	t.Setenv("MONSTER_ARENA_SEED", "3")
	fs := flag.NewFlagSet("simsvc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-workers", "2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Runs != 5 {
		t.Fatalf("expected runs 5 from env, got %d", cfg.Runs)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected flag seed 7, got %d", cfg.Seed)
	}
	if cfg.Workers != 2 || cfg.Out != "out.json" || !cfg.SaveLog || cfg.Verbosity != -1 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("simsvc", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-boss", "x"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunSingleWritesReport(t *testing.T) {
	match := writeMatch(t, `
battle:
  max_turns: 500
team1:
  mode: front
  selection: provided
  provided: [flamikin, aquariuma]
team2:
  mode: optimise
  selection: provided
  sort_key: speed
  provided: [aquariuma]
`)
	out := filepath.Join(t.TempDir(), "out.json")
	var stdout bytes.Buffer
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &stdout, Logger: zap.NewNop()}
	cfg := Config{MatchPath: match, Out: out, Seed: 11, Runs: 1, SaveLog: true, Verbosity: -1}
	if err := r.Run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report map[string]any
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report["id"] == "" || report["result"] == "NONE" {
		t.Fatalf("unexpected report %v", report)
	}
	events, ok := report["events"].([]any)
	if !ok || len(events) == 0 {
		t.Fatal("expected recorded events")
	}
	if !strings.Contains(stdout.String(), "Single battle finished") {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

func TestRunSingleManualSelection(t *testing.T) {
	match := writeMatch(t, `
team1:
  selection: manual
team2:
  selection: provided
  provided: [aquariuma]
`)
	out := filepath.Join(t.TempDir(), "out.json")
	var stdout bytes.Buffer
	r := &Runner{Stdin: strings.NewReader("1\n1\n"), Stdout: &stdout, Logger: zap.NewNop()}
	cfg := Config{MatchPath: match, Out: out, Seed: 5, Runs: 1, Verbosity: -1}
	if err := r.Run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "How many monsters are there?") {
		t.Fatalf("expected manual prompt, got %q", stdout.String())
	}
}

func TestRunBatchSummary(t *testing.T) {
	dir := t.TempDir()
	run := func(out string) combat.Summary {
		t.Helper()
		r := &Runner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Logger: zap.NewNop()}
		cfg := Config{Out: out, Seed: 42, Runs: 20, Workers: 3, Verbosity: -1}
		if err := r.Run(context.Background(), cfg); err != nil {
			t.Fatalf("run batch: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read summary: %v", err)
		}
		var s combat.Summary
		if err := json.Unmarshal(data, &s); err != nil {
			t.Fatalf("decode summary: %v", err)
		}
		return s
	}
	a := run(filepath.Join(dir, "a.json"))
	if a.Runs != 20 || a.Team1Wins+a.Team2Wins+a.Draws != 20 {
		t.Fatalf("unexpected summary %+v", a)
	}
	b := run(filepath.Join(dir, "b.json"))
	if a.Team1Wins != b.Team1Wins || a.Team2Wins != b.Team2Wins || a.Draws != b.Draws {
		t.Fatalf("expected same seed to reproduce outcomes, got %+v and %+v", a, b)
	}
}

func TestRunBatchRejectsManual(t *testing.T) {
	match := writeMatch(t, `
team2:
  selection: manual
`)
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Logger: zap.NewNop()}
	cfg := Config{MatchPath: match, Out: filepath.Join(t.TempDir(), "s.json"), Seed: 1, Runs: 3, Verbosity: -1}
	err := r.Run(context.Background(), cfg)
	if !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestBuildTeam(t *testing.T) {
	reg, err := species.Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	def := config.TeamDef{Mode: "optimise", Selection: "provided", SortKey: "attack", Provided: []string{"Flamikin", "aquariuma"}, Level: 3}
	tm, err := BuildTeam(def, reg, util.New(1), nil)
	if err != nil {
		t.Fatalf("build team: %v", err)
	}
	if tm.Mode() != team.Optimise || tm.SortKey() != team.SortAttack || tm.Size() != 2 {
		t.Fatalf("unexpected team %v", tm)
	}
	m, err := tm.Retrieve()
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if m.Level() != 3 {
		t.Fatalf("expected level 3, got %d", m.Level())
	}

	def.Mode = "sideways"
	if _, err := BuildTeam(def, reg, util.New(1), nil); !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for bad mode, got %v", err)
	}
	def.Mode = "back"
	def.Provided = []string{"nosuchmon"}
	if _, err := BuildTeam(def, reg, util.New(1), nil); !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for unknown species, got %v", err)
	}
}
