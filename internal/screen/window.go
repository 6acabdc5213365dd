// Package screen hosts the overlay in a frameless, floating, transparent
// ebiten window and turns mouse input into controller events.
package screen

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"statoverlay/internal/conf"
	"statoverlay/internal/overlay"
	"statoverlay/internal/style"
)

// Driver is the controller side the window feeds and reads from. All
// calls happen on the ebiten game loop.
type Driver interface {
	Handle(ev overlay.Event) error
	Pump() error
	Labels() overlay.Labels
}

// Window implements ebiten.Game and overlay.Window.
type Window struct {
	driver Driver
	style  style.Style
	face   font.Face

	x, y          int
	width, height int
	visible       bool
	passthrough   bool
	lastCursor    image.Point
}

// New prepares a window with the configured geometry. Nothing is shown
// until Run.
func New(spec conf.WindowSpec, st style.Style) (*Window, error) {
	face, err := style.NewFace(st)
	if err != nil {
		return nil, err
	}
	return &Window{
		style:       st,
		face:        face,
		x:           spec.X,
		y:           spec.Y,
		width:       spec.W,
		height:      spec.H,
		visible:     true,
		passthrough: true,
	}, nil
}

// Attach sets the driver. Must be called before Run.
func (w *Window) Attach(d Driver) {
	w.driver = d
}

// Run opens the window and blocks until it closes or the driver fails.
// On macOS and Windows this must be called from the main goroutine.
func (w *Window) Run() error {
	if w.driver == nil {
		return errors.New("screen: no driver attached")
	}
	ebiten.SetWindowTitle("statoverlay")
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowPosition(w.x, w.y)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(30)
	w.applyPassthrough()

	return ebiten.RunGameWithOptions(w, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
}

// SetPassthrough makes the window ignore (true) or accept mouse input.
func (w *Window) SetPassthrough(enabled bool) {
	w.passthrough = enabled
	w.applyPassthrough()
}

// SetVisible shows or hides the labels. A hidden window draws nothing
// and never takes mouse input.
func (w *Window) SetVisible(visible bool) {
	w.visible = visible
	w.applyPassthrough()
}

func (w *Window) applyPassthrough() {
	ebiten.SetWindowMousePassthrough(w.passthrough || !w.visible)
}

// Position returns the window origin in screen coordinates.
func (w *Window) Position() (int, int) {
	return w.x, w.y
}

// Move places the window origin at x, y.
func (w *Window) Move(x, y int) {
	w.x, w.y = x, y
	ebiten.SetWindowPosition(x, y)
}

func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	w.x, w.y = ebiten.WindowPosition()
	if err := w.pollMouse(); err != nil {
		return err
	}
	return w.driver.Pump()
}

// pollMouse reports the left button in global coordinates: the window
// origin plus the in-window cursor.
func (w *Window) pollMouse() error {
	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(w.x+cx, w.y+cy)

	var ev overlay.Event
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ev = overlay.Mouse{Kind: overlay.MousePress, X: cursor.X, Y: cursor.Y, Left: true}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ev = overlay.Mouse{Kind: overlay.MouseRelease, X: cursor.X, Y: cursor.Y, Left: true}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && cursor != w.lastCursor:
		ev = overlay.Mouse{Kind: overlay.MouseMove, X: cursor.X, Y: cursor.Y, Left: true}
	}
	w.lastCursor = cursor
	if ev == nil {
		return nil
	}
	return w.driver.Handle(ev)
}

func (w *Window) Draw(screen *ebiten.Image) {
	if !w.visible {
		return
	}
	labels := w.driver.Labels()
	pad := w.style.Padding
	maxWidth := w.width - 2*pad

	y := 0
	for _, label := range labels.Lines() {
		lines := style.Wrap(w.face, label, maxWidth)
		textWidth, lineHeight := style.Measure(w.face, lines)
		boxHeight := len(lines)*lineHeight + 2*pad

		// Each label box is sized to its own content.
		if w.style.Background.A > 0 {
			vector.DrawFilledRect(screen, 0, float32(y),
				float32(textWidth+2*pad), float32(boxHeight), w.style.Background, false)
		}
		ascent := w.face.Metrics().Ascent.Ceil()
		for i, line := range lines {
			text.Draw(screen, line, w.face, pad, y+pad+ascent+i*lineHeight, w.style.Color)
		}
		y += boxHeight
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
