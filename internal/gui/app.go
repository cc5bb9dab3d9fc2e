package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/input"
	"github.com/san-kum/dsviz/internal/logging"
)

var (
	ColBg      = rl.RayWhite
	ColBox     = rl.LightGray
	ColBoxLine = rl.Gray
	ColText    = rl.DarkGray
	ColInput   = rl.Black
)

const (
	boxX, boxY = 20, 40
	boxW, boxH = 220, 30
	hudSize    = 20
)

type App struct {
	Tree   *bst.Tree
	Line   *input.Line
	Width  int32
	Height int32
	Logger logging.Logger

	surface surface
}

// initWindow opens the window and leaves Esc to the input line instead of
// closing.
func initWindow(w, h, fps int32) {
	rl.InitWindow(w, h, "dsviz")
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)
}

func NewApp(tree *bst.Tree, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard
	}
	p := tree.Params()
	return &App{
		Tree:   tree,
		Line:   &input.Line{},
		Width:  int32(p.Width),
		Height: int32(p.Height),
		Logger: logger,
	}
}

// Run opens a window sized to the tree's layout and blocks until it is
// closed.
func Run(tree *bst.Tree, fps int, logger logging.Logger) {
	app := NewApp(tree, logger)
	initWindow(app.Width, app.Height, int32(fps))
	defer rl.CloseWindow()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update applies keyboard input and advances the tree by the frame time.
func (a *App) Update() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		a.Line.Type(rune(r))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		a.Line.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.Line.Clear()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Line.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		if v, ok := a.Line.Submit(a.Tree); ok {
			a.Logger.Infof("%s %d", a.Line.Mode(), v)
		}
	}

	a.Tree.Update(float64(rl.GetFrameTime()))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Tree.Draw(a.surface)
	a.DrawHUD()

	rl.EndDrawing()
}

// DrawHUD draws the input box for the current mode and the key hints.
func (a *App) DrawHUD() {
	title := "Insert Value:"
	if a.Line.Mode() == input.ModeSearch {
		title = "Search Value:"
	}
	rl.DrawText(title, boxX, boxY-25, hudSize, ColText)

	box := rl.NewRectangle(boxX, boxY, boxW, boxH)
	rl.DrawRectangleRec(box, rl.RayWhite)
	rl.DrawRectangleLinesEx(box, 2, ColBoxLine)
	rl.DrawText(a.Line.Text(), boxX+5, boxY+5, hudSize, ColInput)

	hint := "[ENTER] SUBMIT  [TAB] INSERT/SEARCH  [ESC] CLEAR"
	rl.DrawText(hint, boxX, a.Height-30, 16, ColText)

	kind, phase := a.Tree.Traversal()
	status := fmt.Sprintf("%d nodes  %s %s  %d FPS", a.Tree.Len(), kind, phase, rl.GetFPS())
	w := rl.MeasureText(status, 16)
	rl.DrawRectangle(a.Width-w-30, 10, w+20, 26, ColBox)
	rl.DrawText(status, a.Width-w-20, 15, 16, ColText)
}
