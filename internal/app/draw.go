package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// minimal drawing helpers, enough for rects, circles and thin lines without
// pulling in ebitenutil

func fillRect(img *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w < 1 || h < 1 {
		return
	}
	r := ebiten.NewImage(int(w), int(h))
	r.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	img.DrawImage(r, op)
}

func fillCircle(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	steps := int(math.Max(12, r))
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + math.Cos(ang)*r
		y := cy + math.Sin(ang)*r
		fillRect(img, x-2, y-2, 4, 4, c)
	}
}

func strokeCircle(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	steps := int(math.Max(16, r*1.5))
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + math.Cos(ang)*r
		y := cy + math.Sin(ang)*r
		fillRect(img, x-1, y-1, 2, 2, c)
	}
}
