package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HUD placement in pixels from the top of the window.
const (
	scoreBaseline     = 110
	highscoreBaseline = 160
	hintOffset        = 120 // Below the vertical center
)

// faces holds the HUD fonts.
type faces struct {
	score font.Face
	small font.Face
}

func loadFaces() (faces, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faces{}, err
	}
	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	score, err := newFace(90)
	if err != nil {
		return faces{}, err
	}
	small, err := newFace(40)
	if err != nil {
		return faces{}, err
	}
	return faces{score: score, small: small}, nil
}

// pixelRect maps a world-space sprite to window pixels. The world origin is
// the window center and world +y points up.
func pixelRect(s core.Sprite, w, h int) (x, y, width, height float32) {
	lo := core.NewBox(s.Pos, s.Size).Min()
	x = float32(lo.X + float64(w)/2)
	y = float32(float64(h)/2 - (lo.Y + s.Size.Y))
	return x, y, float32(s.Size.X), float32(s.Size.Y)
}

// drawSprites fills one rectangle per sprite, in order.
func drawSprites(dst *ebiten.Image, sprites []core.Sprite, w, h int) {
	for _, s := range sprites {
		if s.Color.A <= 0 {
			continue
		}
		x, y, sw, sh := pixelRect(s, w, h)
		vector.DrawFilledRect(dst, x, y, sw, sh, s.Color.NRGBA(), false)
	}
}

// labelPos returns the baseline origin that centers str horizontally.
func labelPos(face font.Face, str string, w, baseline int) image.Point {
	bounds := text.BoundString(face, str)
	return image.Pt((w-bounds.Dx())/2, baseline)
}

// drawLabels places each HUD label by its role.
func drawLabels(dst *ebiten.Image, f faces, labels []core.Label, w, h int) {
	for _, l := range labels {
		face, baseline := f.small, h/2+hintOffset
		switch l.Role {
		case core.LabelScore:
			face, baseline = f.score, scoreBaseline
		case core.LabelHighscore:
			baseline = highscoreBaseline
		}
		p := labelPos(face, l.Text, w, baseline)
		text.Draw(dst, l.Text, face, p.X, p.Y, l.Color.NRGBA())
	}
}
