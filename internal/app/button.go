package app

// Button is a clickable screen region with a label. Hover state is purely
// visual; hit testing is done by the app on click.
type Button struct {
	X, Y, W, H float64
	Label      string
	Hover      bool
}

func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *Button) update(mx, my float64) {
	b.Hover = b.Contains(mx, my)
}

// answerButtons lays out one centered row of choice buttons.
func answerButtons(labels []string, screenW, y float64) []*Button {
	const (
		w       = 120.0
		h       = 50.0
		spacing = 20.0
	)
	total := (w+spacing)*float64(len(labels)) - spacing
	startX := (screenW - total) / 2

	btns := make([]*Button, len(labels))
	for i, label := range labels {
		btns[i] = &Button{
			X:     startX + (w+spacing)*float64(i),
			Y:     y,
			W:     w,
			H:     h,
			Label: label,
		}
	}
	return btns
}
