package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/kpetrov/minesweeper-sim/internal/mines"
)

type game struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView
	board  *mines.Board
	r      *rand.Rand
}

func newGame(r *rand.Rand) (*game, error) {
	board, err := newBoard(r)
	if err != nil {
		return nil, err
	}

	g := &game{
		app:    tview.NewApplication(),
		table:  tview.NewTable(),
		status: tview.NewTextView(),
		board:  board,
		r:      r,
	}

	g.table.SetSelectable(true, true)
	g.table.SetBorder(true)
	g.table.SetSelectedFunc(g.revealSelected)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(g.table, 0, 1, true).
		AddItem(g.status, 1, 0, false)

	g.app.SetRoot(layout, true)
	g.app.SetInputCapture(g.handleKey)

	g.draw()
	return g, nil
}

func (g *game) run() error {
	return g.app.Run()
}

func (g *game) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q':
		g.app.Stop()
		return nil
	case 'n':
		board, err := newBoard(g.r)
		if err != nil {
			log.Error("unable to create board: ", err)
			return nil
		}
		g.board = board
		g.table.Clear()
		g.draw()
		return nil
	}
	return event
}

func (g *game) revealSelected(row, col int) {
	if g.board.State().Terminal() {
		return
	}
	res := g.board.Reveal(row, col)
	log.WithFields(logrus.Fields{
		"row": row, "col": col, "result": res.Kind,
	}).Debug("reveal")
	g.draw()
}

func (g *game) draw() {
	for row := range g.board.Rows() {
		for col := range g.board.Cols() {
			g.table.SetCell(row, col, newCell(g.board.Square(row, col)))
		}
	}
	g.table.SetFixed(g.board.Rows(), g.board.Cols())

	switch g.board.State() {
	case mines.Win:
		g.status.SetText("cleared! (n) new game (q) quit")
	case mines.Loss:
		g.status.SetText("boom. (n) new game (q) quit")
	default:
		g.status.SetText(fmt.Sprintf(
			"%d mines, %d covered - arrows move, enter reveals",
			g.board.NumMines(), g.board.NumCovered(),
		))
	}
}

func newCell(sq mines.Square) *tview.TableCell {
	var (
		text  = sq.String()
		color = tcell.ColorWhite
	)
	switch {
	case sq == mines.Covered:
		color = tcell.ColorGray
	case sq == mines.Mine:
		color = tcell.ColorRed
	case sq == 0:
		text = " "
	case sq > 0:
		color = tcell.ColorAqua
	}
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(color)
}
