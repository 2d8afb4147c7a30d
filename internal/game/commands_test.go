package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestExecuteErrors(t *testing.T) {
	g, _ := newTestGame(t, 3, 3, constSource(1))

	tests := []struct {
		command string
		err     string
	}{
		{"x", "unknown command"},
		{"o 1", "invalid number of arguments"},
		{"g 1", "invalid number of arguments"},
		{"o a 1", "first argument must be an int"},
		{"f 1 b", "second argument must be an int"},
	}
	for _, test := range tests {
		assert.EqualError(t, g.Execute(test.command), test.err, test.command)
	}
	assert.ErrorIs(t, g.Execute("o 3 0"), mines.ErrOutOfBounds)
	assert.ErrorIs(t, g.Execute("q"), ErrQuit)
	assert.NoError(t, g.Execute("   "))
	assert.NoError(t, g.Execute("g"))
	assert.Equal(t, mines.Active, g.Outcome())
}

func TestExecuteCommands(t *testing.T) {
	g, _ := newTestGame(t, 3, 3, nil)
	require.NoError(t, g.session.Plant(mines.Point{X: 0, Y: 0}, mines.Point{X: 2, Y: 0}))

	require.NoError(t, g.Execute("f 0 0"))
	assert.Equal(t, mines.Flag, g.Status().Grid[0])
	require.NoError(t, g.Execute("o 2 2"))
	assert.Equal(t, mines.CellStatus(0), g.Status().Grid[8])

	require.NoError(t, g.Execute("p"))
	assert.True(t, g.Paused())
	assert.ErrorIs(t, g.Execute("o 1 0"), ErrPaused)
	require.NoError(t, g.Execute("p"))

	require.NoError(t, g.Execute("o 1 0"))
	assert.Equal(t, mines.Victory, g.Outcome())

	require.NoError(t, g.Execute("n"))
	assert.Equal(t, mines.Active, g.Outcome())
	assert.Equal(t, 2, g.Status().Played)
}

func TestExecuteAll(t *testing.T) {
	g, _ := newTestGame(t, 3, 3, nil)
	require.NoError(t, g.session.Plant(mines.Point{X: 1, Y: 1}))

	// The game ends on the first line; the rest is dropped.
	require.NoError(t, g.ExecuteAll("f 0 0\no 1 1\no 2 2\n"))
	status := g.Status()
	assert.Equal(t, mines.Defeat, status.Outcome)
	assert.Equal(t, mines.WrongFlag, status.Grid[0])
	assert.Equal(t, mines.Unknown, status.Grid[8])

	err := g.ExecuteAll("n\nf 0 0\nbogus\no 1 1")
	assert.EqualError(t, err, "unknown command")
	status = g.Status()
	assert.Equal(t, mines.Active, status.Outcome)
	assert.Equal(t, mines.Flag, status.Grid[0])
	assert.Equal(t, mines.Unknown, status.Grid[4])
}
