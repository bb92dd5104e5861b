package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ebiten-dungeon/grid"
)

var layerStyles = map[Layer]tcell.Style{
	LayerEmpty:      tcell.StyleDefault,
	LayerFloor:      tcell.StyleDefault.Foreground(tcell.ColorGray),
	LayerDecoration: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	LayerWall:       tcell.StyleDefault.Foreground(tcell.ColorWhite),
	LayerFeature:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	LayerObject:     tcell.StyleDefault.Foreground(tcell.ColorBlue),
	LayerEnemy:      tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// Terminal shows a canvas on a tcell screen
type Terminal struct {
	*Canvas
	screen tcell.Screen
	status string
}

// NewTerminal wraps an initialised screen. The caller owns the screen and
// finalises it.
func NewTerminal(screen tcell.Screen, seed int64) *Terminal {
	return &Terminal{
		Canvas: NewCanvas(seed),
		screen: screen,
	}
}

// SetStatus sets the line shown below the dungeon
func (t *Terminal) SetStatus(format string, args ...any) {
	t.status = fmt.Sprintf(format, args...)
}

// Draw paints the canvas and the status line and shows the result
func (t *Terminal) Draw() {
	t.screen.Clear()

	height := 0
	t.Each(func(col, row int, cell grid.Cell) {
		r, layer := t.Cell(cell)
		t.screen.SetContent(col, row, r, nil, layerStyles[layer])
		height = row + 1
	})

	for i, r := range []rune(t.status) {
		t.screen.SetContent(i, height+1, r, nil, tcell.StyleDefault)
	}

	t.screen.Show()
}

// Run draws the canvas and handles keys until Escape or q is pressed.
// r calls regenerate and redraws.
func (t *Terminal) Run(regenerate func() error) error {
	t.Draw()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			t.Draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
				if err := regenerate(); err != nil {
					return err
				}
				t.Draw()
			}
		case nil:
			// screen finalised
			return nil
		}
	}
}
