package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar  = '●'
	BirdHeadChar  = '▶'
	BirdDeadChar  = '×'
	WingUpChar    = '▀'
	WingDownChar  = '▄'
	WallChar      = '█'
	WallCapTop    = '▄'
	WallCapBottom = '▀'
	GroundTopChar = '▀'
	GroundChar    = '▓'
	GroundAltChar = '▒'
	CloudChar     = '░'
)

// groundStripes is the number of texture stripes per ground tile.
const groundStripes = 12

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to the screen.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	vp := core.NewViewport(snap.WorldW, snap.WorldH, dst.Width(), dst.Height())

	for _, s := range snap.Sprites {
		switch s.Kind {
		case SpriteCloud:
			drawCloud(dst, vp, s)
		case SpriteWall:
			drawWall(dst, vp, s)
		case SpriteGround:
			drawGround(dst, vp, s)
		case SpriteBird:
			drawBird(dst, vp, s)
		}
	}

	// HUD
	dst.DrawTextColor(1, 0, snap.ScoreText, core.ColorWhite)
	dst.DrawTextColor(1, 1, snap.BestText, core.ColorBrightYellow)

	if snap.State == GameOver {
		subtitle := snap.ScoreText
		if snap.Settled {
			subtitle = snap.ScoreText + "  |  Press Space to restart"
		}
		drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

func drawCloud(dst *core.Screen, vp core.Viewport, s Sprite) {
	w, h := s.Shape.Size()
	r := vp.RectOf(s.Position.X(), s.Position.Y(), w*0.6, h*0.4)
	dst.DrawRect(r, CloudChar, core.ColorGray)
}

func drawWall(dst *core.Screen, vp core.Viewport, s Sprite) {
	w, h := s.Shape.Size()
	r := vp.RectOf(s.Position.X(), s.Position.Y(), w, h)
	dst.DrawRect(r, WallChar, core.ColorGreen)

	// Caps face the slit: the lower wall's cap is its top row, the upper
	// wall's cap its bottom row.
	capRow, capChar := r.Y, WallCapBottom
	if s.Position.Y() > vp.WorldH/2 {
		capRow, capChar = r.Bottom()-1, WallCapTop
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, capRow, capChar, core.ColorBrightGreen)
	}
}

func drawGround(dst *core.Screen, vp core.Viewport, s Sprite) {
	w, h := s.Shape.Size()
	r := vp.RectOf(s.Position.X(), s.Position.Y(), w, h)
	left := s.Position.X() - w/2

	for x := r.X; x < r.Right(); x++ {
		// Stripe by position inside the tile so the texture scrolls with it.
		wx := (float64(x) + 0.5) / float64(vp.ScreenW) * vp.WorldW
		stripe := int(math.Floor((wx - left) / (w / groundStripes)))
		ch := GroundChar
		if stripe%2 != 0 {
			ch = GroundAltChar
		}
		dst.SetColor(x, r.Y, GroundTopChar, core.ColorBrightGreen)
		for y := r.Y + 1; y < r.Bottom(); y++ {
			dst.SetColor(x, y, ch, core.ColorOrange)
		}
	}
}

func drawBird(dst *core.Screen, vp core.Viewport, s Sprite) {
	w, h := s.Shape.Size()
	r := vp.RectOf(s.Position.X(), s.Position.Y(), w, h)
	dst.DrawRect(r, BirdBodyChar, core.ColorBrightYellow)

	wing := WingUpChar
	if s.Frame == FrameWingsDown {
		wing = WingDownChar
	}
	head := BirdHeadChar
	if s.Rotation != 0 {
		head = BirdDeadChar
	}
	if r.W > 1 {
		dst.SetColor(r.X, r.Y, wing, core.ColorYellow)
	}
	dst.SetColor(r.Right()-1, r.Y, head, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
