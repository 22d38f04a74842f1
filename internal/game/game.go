package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/newyear-splash/internal/scene"
)

// Game renders a scene in an Ebiten window. Ebiten calls Update at a
// fixed TPS, which is the particle tick.
type Game struct {
	scene *scene.Scene
	face  *text.GoXFace

	width, height int

	// pointer edge detection; the cursor reads (0,0) until it first moves
	lastX, lastY int
	touches      []ebiten.TouchID

	// button state
	buttonHovered bool
	buttonPressed bool
}

func New(s *scene.Scene) *Game {
	return &Game{
		scene: s,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	if g.width == 0 || g.height == 0 {
		return nil
	}
	if !g.scene.Mounted() {
		g.scene.Mount(float64(g.width), float64(g.height))
	} else {
		g.scene.Resize(float64(g.width), float64(g.height))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.scene.Unmount()
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.pointerAt(mouseX, mouseY)

	// Handle button interactions
	button := buttonRect(g.width, g.height)
	idle := g.scene.State() == scene.Idle
	g.buttonHovered = idle && inRect(button, mouseX, mouseY)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.scene.Start()
		}
		g.buttonPressed = false
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.pointerAt(x, y)
		if idle && inRect(button, x, y) {
			g.scene.Start()
		}
	}

	if idle && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.scene.Start()
	}

	g.scene.Tick()
	return nil
}

// pointerAt forwards only real movement, like a pointer-move listener.
func (g *Game) pointerAt(x, y int) {
	if x == g.lastX && y == g.lastY {
		return
	}
	g.lastX, g.lastY = x, y
	g.scene.PointerMoved(float64(x), float64(y))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
