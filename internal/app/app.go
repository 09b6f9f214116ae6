// Package app is the ebiten shell around the game session: it polls input,
// translates clicks into typed events, and draws the current snapshot. No
// game rules live here.
package app

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/entity"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/game"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/problem"
)

var (
	colBackground = color.RGBA{0x22, 0x28, 0x31, 0xFF}
	colPrimary    = color.RGBA{0x30, 0x47, 0x5E, 0xFF}
	colSecondary  = color.RGBA{0x00, 0xAD, 0xB5, 0xFF}
	colAccent     = color.RGBA{0xFF, 0x59, 0x5E, 0xFF}
	colSuccess    = color.RGBA{0x2E, 0xD5, 0x73, 0xFF}
	colError      = color.RGBA{0xFF, 0x47, 0x57, 0xFF}
	colNeutral    = color.RGBA{0xEE, 0xEE, 0xEE, 0xFF}
)

// enemy body color per max HP tier
var tierColors = map[int]color.RGBA{
	1: {0xD9, 0x53, 0x4F, 0xFF},
	2: {0xF0, 0xA3, 0x30, 0xFF},
	3: {0xB0, 0x5C, 0xE6, 0xFF},
}

const answerRowY = 500.0

type App struct {
	session *game.Session
	log     *zap.Logger

	startBtn   *Button
	restartBtn *Button
	answers    []*Button
	lastQ      *problem.Question

	frame int
}

func New(session *game.Session, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		session: session,
		log:     log,
		startBtn: &Button{
			X: game.FieldW/2 - 80, Y: 300, W: 160, H: 50, Label: "Start",
		},
		restartBtn: &Button{
			X: game.FieldW/2 - 80, Y: 380, W: 160, H: 50, Label: "Menu",
		},
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(game.FieldW), int(game.FieldH)
}

func (a *App) Update() error {
	a.frame++
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	a.startBtn.update(fx, fy)
	a.restartBtn.update(fx, fy)
	for _, b := range a.answers {
		b.update(fx, fy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch a.session.State {
		case game.StatePlaying:
			a.session.Apply(game.Event{Kind: game.EventQuit})
		case game.StateMenu:
			return ebiten.Termination
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.click(fx, fy)
	}

	a.session.Tick(1.0/60.0, movementInput())

	// rebuild the answer row when the question changes
	if q := a.session.Question; q != a.lastQ {
		a.lastQ = q
		a.answers = nil
		if q != nil {
			labels := make([]string, len(q.Choices))
			for i, c := range q.Choices {
				labels[i] = strconv.Itoa(c)
			}
			a.answers = answerButtons(labels, game.FieldW, answerRowY)
		}
	}
	return nil
}

// click routes a mouse release to the event the current state accepts.
func (a *App) click(x, y float64) {
	switch a.session.State {
	case game.StateMenu:
		if a.startBtn.Contains(x, y) {
			a.session.Apply(game.Event{Kind: game.EventStart})
		}
	case game.StatePlaying:
		if a.session.Phase == game.PhaseAwaitingAnswer {
			for i, b := range a.answers {
				if b.Contains(x, y) {
					a.session.Apply(game.Event{Kind: game.EventChoose, Choice: i})
					return
				}
			}
		}
		a.session.Apply(game.Event{Kind: game.EventShoot, At: entity.Vec{X: x, Y: y}})
	case game.StateGameOver:
		if a.restartBtn.Contains(x, y) {
			a.session.Apply(game.Event{Kind: game.EventRestart})
		}
	}
}

func movementInput() entity.Input {
	var in entity.Input
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Ax--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Ax++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Ay--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Ay++
	}
	return in
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	a.drawParticles(screen)

	switch a.session.State {
	case game.StateMenu:
		a.drawMenu(screen)
	case game.StatePlaying:
		a.drawPlaying(screen)
	case game.StateGameOver:
		a.drawGameOver(screen)
	}
}

func (a *App) drawMenu(screen *ebiten.Image) {
	text.Draw(screen, "MATH BLASTER", basicfont.Face7x13, int(game.FieldW/2)-45, 200, colSecondary)
	text.Draw(screen, "Answer. Shoot. Dodge.", basicfont.Face7x13, int(game.FieldW/2)-72, 230, colNeutral)
	a.drawButton(screen, a.startBtn, colPrimary)
}

func (a *App) drawPlaying(screen *ebiten.Image) {
	s := a.session

	for _, e := range s.World.Enemies {
		if !e.Alive {
			continue
		}
		body, ok := tierColors[e.MaxHP]
		if !ok {
			body = colAccent
		}
		fillCircle(screen, e.Pos.X, e.Pos.Y, entity.EnemyRadius, body)
		text.Draw(screen, string(e.Glyph), basicfont.Face7x13, int(e.Pos.X)-3, int(e.Pos.Y)+4, colNeutral)

		// hp bar
		barW := 30.0
		healthW := barW * float64(e.HP) / float64(e.MaxHP)
		fillRect(screen, e.Pos.X-barW/2, e.Pos.Y-entity.EnemyRadius-10, barW, 4, colNeutral)
		fillRect(screen, e.Pos.X-barW/2, e.Pos.Y-entity.EnemyRadius-10, healthW, 4, colSuccess)
	}

	// ship blinks inside the contact debounce window
	if !s.Invulnerable() || a.frame/6%2 == 0 {
		fillCircle(screen, s.Player.Pos.X, s.Player.Pos.Y, entity.PlayerRadius, colSecondary)
		strokeCircle(screen, s.Player.Pos.X, s.Player.Pos.Y, entity.PlayerRadius+3, colPrimary)
	}

	a.drawHUD(screen)

	if s.Phase == game.PhaseAwaitingAnswer && s.Question != nil {
		text.Draw(screen, s.Question.Prompt+" = ?", basicfont.Face7x13,
			int(game.FieldW/2)-len(s.Question.Prompt)*4, 80, colNeutral)
		for _, b := range a.answers {
			a.drawButton(screen, b, colPrimary)
		}

		// question countdown
		frac := s.QuestionTime / game.QuestionSeconds
		fillRect(screen, game.FieldW/2-100, 95, 200, 5, colPrimary)
		fillRect(screen, game.FieldW/2-100, 95, 200*frac, 5, colSecondary)
	}

	if s.Phase == game.PhaseScored {
		msg, c := "Wrong!", colError
		if s.LastAnswerCorrect() {
			msg, c = "Correct!", colSuccess
		}
		text.Draw(screen, msg, basicfont.Face7x13, int(game.FieldW/2)-25, 80, c)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	s := a.session
	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score), basicfont.Face7x13, 10, 20, colNeutral)
	text.Draw(screen, fmt.Sprintf("Level: %d", s.Level), basicfont.Face7x13, int(game.FieldW)-90, 20, colNeutral)
	if s.Streak > 1 {
		text.Draw(screen, fmt.Sprintf("Streak x%d", s.Streak), basicfont.Face7x13, int(game.FieldW)-90, 40, colSuccess)
	}

	// health bar
	barW := 150.0
	healthW := barW * float64(s.Health) / float64(game.MaxHealth)
	fillRect(screen, 10, 30, barW, 10, colPrimary)
	fillRect(screen, 10, 30, healthW, 10, colAccent)
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	text.Draw(screen, "GAME OVER", basicfont.Face7x13, int(game.FieldW/2)-35, 250, colError)
	text.Draw(screen, fmt.Sprintf("Final score: %d", a.session.Score), basicfont.Face7x13,
		int(game.FieldW/2)-55, 290, colNeutral)
	text.Draw(screen, fmt.Sprintf("Reached level %d", a.session.Level), basicfont.Face7x13,
		int(game.FieldW/2)-55, 310, colNeutral)
	a.drawButton(screen, a.restartBtn, colPrimary)
}

func (a *App) drawButton(screen *ebiten.Image, b *Button, c color.RGBA) {
	if b.Hover {
		c = color.RGBA{
			uint8(min(255, int(c.R)+30)),
			uint8(min(255, int(c.G)+30)),
			uint8(min(255, int(c.B)+30)),
			0xFF,
		}
	}
	fillRect(screen, b.X, b.Y, b.W, b.H, c)
	text.Draw(screen, b.Label, basicfont.Face7x13,
		int(b.X+b.W/2)-len(b.Label)*4, int(b.Y+b.H/2)+4, colNeutral)
}

func (a *App) drawParticles(screen *ebiten.Image) {
	for _, p := range a.session.World.Particles {
		alpha := uint8(255 * p.Life / p.Max)
		fillRect(screen, p.Pos.X-1, p.Pos.Y-1, 3, 3, color.RGBA{0xFF, 0xC4, 0x5A, alpha})
	}
}
