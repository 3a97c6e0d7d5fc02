// Command sweep is an interactive terminal minesweeper. Boards come from
// the random generator or, with -image, from a black-on-white PNG of the
// minefield.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/kpetrov/minesweeper-sim/internal/config"
	"github.com/kpetrov/minesweeper-sim/internal/imagemask"
	"github.com/kpetrov/minesweeper-sim/internal/mines"
	"github.com/kpetrov/minesweeper-sim/internal/render"
)

var (
	log = logrus.New()

	configPath string
	rows       int
	cols       int
	mineCount  int
	imagePath  string
	seed       uint64
)

func init() {
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.IntVar(&rows, "rows", 9, "board rows")
	flag.IntVar(&cols, "cols", 9, "board columns")
	flag.IntVar(&mineCount, "mines", 10, "mines on the board")
	flag.StringVar(&imagePath, "image", "", "build the minefield from this PNG instead")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 seeds from entropy)")
}

func newBoard(r *rand.Rand) (*mines.Board, error) {
	if imagePath == "" {
		return mines.FromDimensions(rows, cols, mineCount, r)
	}
	mask, err := imagemask.FromPNGFile(imagePath)
	if err != nil {
		return nil, err
	}
	return mines.FromMineMask(mask)
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		if err := config.Read(configPath, &cfg); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
	}
	// the tui owns the terminal, so keep the screen clean and log to
	// the configured file only
	log.SetOutput(io.Discard)
	if err := cfg.SetupLogger(log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log

	var r *rand.Rand
	if seed == 0 {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		r = rand.New(rand.NewPCG(seed, seed))
	}

	g, err := newGame(r)
	if err != nil {
		log.Fatal("unable to create board: ", err)
	}

	if err := g.run(); err != nil {
		log.Fatal("unable to run application: ", err)
	}

	// leave the final position on the terminal after the tui exits
	fmt.Print(render.Text(g.board))
	fmt.Println(g.board.State())
}
