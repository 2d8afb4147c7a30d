package game

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrQuit = errors.New("quit requested")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // refresh
	"o": 2, // open x y
	"f": 2, // flag x y
	"n": 0, // new game
	"p": 0, // pause
	"q": 0, // quit
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// Execute runs a single text command against the game.
func (g *Game) Execute(c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	Log.WithFields(logrus.Fields{"command": c}).Debug("execute")

	switch parts[0] {
	case "g":
		return nil
	case "o", "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		_, err = g.Click(x, y, parts[0] == "o")
		return err
	case "n":
		return g.Reset()
	case "p":
		g.TogglePause()
		return nil
	case "q":
		return ErrQuit
	}
	return errors.New("invalid command")
}

// ExecuteAll runs newline separated commands, stopping at the first error or
// as soon as the game is decided.
func (g *Game) ExecuteAll(text string) error {
	for _, c := range byPiece(strings.TrimSpace(text), "\n") {
		if err := g.Execute(c); err != nil {
			return err
		}
		if g.Outcome().Over() {
			break
		}
	}
	return nil
}
