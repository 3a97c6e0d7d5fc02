// Command sweepbench plays batches of randomly generated boards with the
// rule-based solver and reports how they went. Useful for eyeballing how
// board parameters affect solvability.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kpetrov/minesweeper-sim/internal/config"
	"github.com/kpetrov/minesweeper-sim/internal/mines"
	"github.com/kpetrov/minesweeper-sim/internal/solver"
)

var (
	log = logrus.New()

	configPath string
	rows       int
	cols       int
	mineCount  int
	games      int
	workers    int
	seed       uint64
)

func init() {
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.IntVar(&rows, "rows", 9, "board rows")
	flag.IntVar(&cols, "cols", 9, "board columns")
	flag.IntVar(&mineCount, "mines", 10, "mines per board")
	flag.IntVar(&games, "games", 1000, "number of games to play")
	flag.IntVar(&workers, "workers", 4, "parallel workers")
	flag.Uint64Var(&seed, "seed", 1, "base random seed")
}

type tally struct {
	games, wins    int
	moves, guesses int
}

func (t *tally) add(other tally) {
	t.games += other.games
	t.wins += other.wins
	t.moves += other.moves
	t.guesses += other.guesses
}

func playBatch(ctx context.Context, count int, r *rand.Rand) (tally, error) {
	var t tally
	for range count {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		board, err := mines.FromDimensions(rows, cols, mineCount, r)
		if err != nil {
			return t, err
		}
		state, stats := solver.New(board, r).Play()
		t.games++
		if state == mines.Win {
			t.wins++
		}
		t.moves += stats.Moves
		t.guesses += stats.Guesses
	}
	return t, nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		if err := config.Read(configPath, &cfg); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
	}
	if err := cfg.SetupLogger(log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log
	solver.Log = log

	log.WithFields(cfg.Fields()).Debug("config")
	log.WithFields(logrus.Fields{
		"rows": rows, "cols": cols, "mines": mineCount,
		"games": games, "workers": workers,
	}).Info("starting benchmark")

	if workers < 1 {
		workers = 1
	}

	var (
		g, gCtx = errgroup.WithContext(ctx)
		tallies = make([]tally, workers)
	)
	for w := range workers {
		count := games / workers
		if w < games%workers {
			count++
		}
		r := rand.New(rand.NewPCG(seed, uint64(w)))
		g.Go(func() error {
			t, err := playBatch(gCtx, count, r)
			tallies[w] = t
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("benchmark interrupted: ", err)
	}

	var total tally
	for _, t := range tallies {
		total.add(t)
	}
	if total.games == 0 {
		log.Fatal("no games played")
	}

	log.WithFields(logrus.Fields{
		"games":       total.games,
		"wins":        total.wins,
		"win_rate":    float64(total.wins) / float64(total.games),
		"avg_moves":   float64(total.moves) / float64(total.games),
		"avg_guesses": float64(total.guesses) / float64(total.games),
	}).Info("benchmark done")
}
