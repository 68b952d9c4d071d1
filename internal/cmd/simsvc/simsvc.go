// Package simsvc parses simulator flags and runs single or batch battles.
package simsvc

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"monster_arena/internal/combat"
	"monster_arena/internal/config"
	apperrors "monster_arena/internal/errors"
	"monster_arena/internal/species"
	"monster_arena/internal/team"
	"monster_arena/internal/util"
)

// Config holds simulator command configuration. Environment values are
// defaults; flags override them.
type Config struct {
	MatchPath   string `env:"MONSTER_ARENA_MATCH"`
	SpeciesPath string `env:"MONSTER_ARENA_SPECIES"`
	Out         string `env:"MONSTER_ARENA_OUT" envDefault:"out.json"`
	Seed        int64  `env:"MONSTER_ARENA_SEED"`
	Runs        int    `env:"MONSTER_ARENA_RUNS" envDefault:"1"`
	Workers     int    `env:"MONSTER_ARENA_WORKERS" envDefault:"8"`
	SaveLog     bool   `env:"MONSTER_ARENA_LOG" envDefault:"true"`
	// Verbosity overrides the match file when not negative.
	Verbosity int `env:"MONSTER_ARENA_VERBOSITY" envDefault:"-1"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.MatchPath, "config", cfg.MatchPath, "match yaml (empty: two random queue teams)")
	fs.StringVar(&cfg.SpeciesPath, "species", cfg.SpeciesPath, "species table yaml (empty: built-in table)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output file (single) or summary file (batch)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed (0 = random)")
	fs.IntVar(&cfg.Runs, "n", cfg.Runs, "number of battles")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "batch workers")
	fs.BoolVar(&cfg.SaveLog, "log", cfg.SaveLog, "save full event log when n==1")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "battle log verbosity 0-3 (negative: use match file)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Runner carries the process streams so manual selection and reports can be
// redirected in tests.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger *zap.Logger
}

// Run loads the match and species table and plays cfg.Runs battles on the
// process streams.
func Run(ctx context.Context, cfg Config) error {
	r := &Runner{Stdin: os.Stdin, Stdout: os.Stdout}
	return r.Run(ctx, cfg)
}

// NewLogger returns a development logger for verbose runs and a production
// logger otherwise.
func NewLogger(verbosity int) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if verbosity >= 2 {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Run plays cfg.Runs battles. A nil Logger is built from the effective
// battle verbosity.
func (r *Runner) Run(ctx context.Context, cfg Config) error {
	match, speciesCfg, err := config.LoadAll(cfg.MatchPath, cfg.SpeciesPath)
	if err != nil {
		return err
	}
	reg, err := species.FromConfig(speciesCfg)
	if err != nil {
		return err
	}
	if cfg.Verbosity >= 0 {
		match.Battle.Verbosity = cfg.Verbosity
	}
	if r.Logger == nil {
		logger, err := NewLogger(match.Battle.Verbosity)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		r.Logger = logger
	}
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = util.NewSeed(); err != nil {
			return err
		}
	}
	r.Logger.Debug("match loaded", zap.Int64("seed", seed), zap.Int("species", len(reg.All())))

	if cfg.Runs <= 1 {
		return r.runSingle(match, reg, seed, cfg)
	}
	return r.runBatch(ctx, match, reg, seed, cfg)
}

func (r *Runner) runSingle(match *config.MatchConfig, reg *species.Registry, seed int64, cfg Config) error {
	rng := util.New(seed)
	con := team.NewConsole(r.Stdin, r.Stdout)
	t1, err := BuildTeam(match.Team1, reg, rng, con)
	if err != nil {
		return fmt.Errorf("team 1: %w", err)
	}
	t2, err := BuildTeam(match.Team2, reg, rng, con)
	if err != nil {
		return fmt.Errorf("team 2: %w", err)
	}
	b := combat.NewBattle(match.Battle, r.Logger, nil)
	res, err := combat.RunSingle(b, t1, t2, cfg.SaveLog)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Out, combat.MarshalPretty(res), 0644); err != nil {
		return err
	}
	fmt.Fprintf(r.Stdout, "Single battle finished. Result=%s, turns=%d -> %s\n", res.Result, res.Turns, cfg.Out)
	return nil
}

func (r *Runner) runBatch(ctx context.Context, match *config.MatchConfig, reg *species.Registry, seed int64, cfg Config) error {
	for _, def := range []config.TeamDef{match.Team1, match.Team2} {
		if sel, _ := team.ParseSelection(def.Selection); sel == team.Manual {
			return apperrors.New(apperrors.CodeInvalidConfiguration, "manual selection is not available in batch runs")
		}
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	quiet := match.Battle
	quiet.Verbosity = 0

	var (
		mu      sync.Mutex
		summary combat.Summary
	)
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				rng := util.New(seed + int64(i))
				t1, err := BuildTeam(match.Team1, reg, rng, nil)
				if err != nil {
					return fmt.Errorf("battle %d team 1: %w", i, err)
				}
				t2, err := BuildTeam(match.Team2, reg, rng, nil)
				if err != nil {
					return fmt.Errorf("battle %d team 2: %w", i, err)
				}
				res, err := combat.RunSingle(combat.NewBattle(quiet, r.Logger, nil), t1, t2, false)
				if err != nil {
					return fmt.Errorf("battle %d: %w", i, err)
				}
				mu.Lock()
				summary.Add(res)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < cfg.Runs; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Out, combat.MarshalPretty(summary), 0644); err != nil {
		return err
	}
	fmt.Fprintf(r.Stdout, "Batch %d done: team1 %.1f%%, team2 %.1f%%, draw %.1f%% -> %s\n",
		summary.Runs, summary.Team1Rate*100, summary.Team2Rate*100, summary.DrawRate*100, cfg.Out)
	return nil
}

// BuildTeam turns a match team description into a Team.
func BuildTeam(def config.TeamDef, reg *species.Registry, rng util.Rand, con *team.Console) (*team.Team, error) {
	mode, err := team.ParseMode(def.Mode)
	if err != nil {
		return nil, err
	}
	sel, err := team.ParseSelection(def.Selection)
	if err != nil {
		return nil, err
	}
	key, err := team.ParseSortKey(def.SortKey)
	if err != nil {
		return nil, err
	}
	cfg := team.Config{
		Mode:         mode,
		Selection:    sel,
		SortKey:      key,
		Registry:     reg,
		Rand:         rng,
		Console:      con,
		Level:        def.Level,
		ComplexStats: def.ComplexStats,
	}
	if sel == team.Provided {
		if cfg.Provided, err = reg.LookupAll(def.Provided); err != nil {
			return nil, err
		}
	}
	return team.New(cfg)
}
