//go:build ebiten

package app

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

// App adapts a game.Game to the ebiten.Game interface.
type App struct {
	game   *game.Game
	logger *slog.Logger
	tile   int
	width  int
	height int

	// board keeps the last drawn tiles; only cells whose status changed
	// since the previous frame are painted again.
	board *ebiten.Image
	prev  mines.Grid
}

func New(g *game.Game, tile int, logger *slog.Logger) *App {
	params := g.Params()
	return &App{
		game:   g,
		logger: logger,
		tile:   tile,
		width:  params.Width,
		height: params.Height,
		board:  ebiten.NewImage(params.Width*tile, params.Height*tile),
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := a.game.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.TogglePause()
	}

	left := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	if !left && !right {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := cellAt(mx, my, a.tile, a.width, a.height)
	if !ok {
		return nil
	}
	outcome, err := a.game.Click(x, y, left)
	switch {
	case errors.Is(err, mines.ErrGameOver), errors.Is(err, game.ErrPaused):
	case err != nil:
		a.logger.Warn("click rejected", slog.Int("x", x), slog.Int("y", y), slog.Any("error", err))
	case outcome.Over():
		a.logger.Info("game over", slog.String("outcome", outcome.String()))
	}
	return nil
}

func (a *App) drawCell(x, y int, s mines.CellStatus) {
	px, py := float32(x*a.tile), float32(y*a.tile)
	size := float32(a.tile)
	vector.DrawFilledRect(a.board, px, py, size, size, tileColor(s), false)
	vector.StrokeRect(a.board, px, py, size, size, 1, outlineColor, false)
	if label := tileLabel(s); label != "" {
		text.Draw(a.board, label, basicfont.Face7x13,
			x*a.tile+a.tile/2-3, y*a.tile+a.tile/2+5, outlineColor)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	status := a.game.Status()

	for _, i := range status.Grid.Diff(a.prev) {
		a.drawCell(i%a.width, i/a.width, status.Grid[i])
	}
	a.prev = status.Grid

	header := headerHeight(a.tile)
	vector.DrawFilledRect(screen, 0, 0, float32(a.width*a.tile), float32(header), headerColor, false)
	text.Draw(screen, scoreText(status), basicfont.Face7x13, 8, header/2+5, headerText)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(header))
	screen.DrawImage(a.board, op)

	if banner := bannerText(status); banner != "" {
		w, h := screenSize(a.tile, a.width, a.height)
		vector.DrawFilledRect(screen, 0, float32(h/2-20), float32(w), 40, bannerColor, false)
		text.Draw(screen, banner, basicfont.Face7x13, 16, h/2+5, headerText)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize(a.tile, a.width, a.height)
}
