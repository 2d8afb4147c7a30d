package app

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

/*
 * Hidden: light gray
 * Revealed: green
 * Flagged: magenta
 * Exploded: red
 */
var (
	hiddenColor   = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	revealedColor = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	flaggedColor  = color.RGBA{0xFF, 0x00, 0xFF, 0xFF}
	explodedColor = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	mineColor     = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	wrongColor    = color.RGBA{0xFF, 0xA5, 0x00, 0xFF}
	outlineColor  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	headerColor   = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	headerText    = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	bannerColor   = color.RGBA{0x00, 0x00, 0x00, 0xC0}
)

// The scoreboard strip above the board is two tiles tall.
func headerHeight(tile int) int {
	return 2 * tile
}

func screenSize(tile, width, height int) (int, int) {
	return width * tile, headerHeight(tile) + height*tile
}

// cellAt maps a cursor position to board coordinates.
func cellAt(mx, my, tile, width, height int) (x, y int, ok bool) {
	my -= headerHeight(tile)
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y = mx/tile, my/tile
	if x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

func tileColor(s mines.CellStatus) color.RGBA {
	switch {
	case s.Open():
		return revealedColor
	case s == mines.Flag, s == mines.CorrectFlag:
		return flaggedColor
	case s == mines.ExplodedMine:
		return explodedColor
	case s == mines.UnflaggedMine:
		return mineColor
	case s == mines.WrongFlag:
		return wrongColor
	default:
		return hiddenColor
	}
}

// tileLabel is the glyph drawn on top of the tile color; empty for none.
func tileLabel(s mines.CellStatus) string {
	if s.Open() && s > 0 {
		return strconv.Itoa(int(s))
	}
	return ""
}

func scoreText(s game.Status) string {
	secs := int(s.Elapsed.Seconds())
	return fmt.Sprintf("%03d   mines %d", secs, s.MinesLeft)
}

func bannerText(s game.Status) string {
	switch {
	case s.Outcome == mines.Victory:
		return "Victory! Press Enter for a new game"
	case s.Outcome == mines.Defeat:
		return "Defeat. Press Enter for a new game"
	case s.Paused:
		return "The game is paused"
	default:
		return ""
	}
}
