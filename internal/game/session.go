package game

import (
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/entity"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/problem"
)

type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// Phase is the inner cycle of StatePlaying: a live question, then a short
// pause after it was answered before the next one appears.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota
	PhaseScored
)

// Session holds one run of the game. All mutation goes through Apply and
// Tick; the render layer only reads.
type Session struct {
	ID uuid.UUID

	State State
	Phase Phase

	Score  int
	Health int
	Level  int
	Streak int

	Question     *problem.Question
	QuestionTime float64 // seconds left on the current question

	World  *entity.World
	Player *entity.Player

	phaseTimer  float64
	invulnTimer float64
	lastCorrect bool

	gen   *problem.Generator
	sound Notifier
	log   *zap.Logger
}

func NewSession(r *rand.Rand, sound Notifier, log *zap.Logger) *Session {
	if sound == nil {
		sound = NopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	return &Session{
		ID:     id,
		State:  StateMenu,
		World:  entity.NewWorld(FieldW, FieldH, r),
		Player: &entity.Player{Pos: entity.Vec{X: FieldW / 2, Y: FieldH * 0.75}},
		gen:    problem.NewGenerator(r),
		sound:  sound,
		log:    log.With(zap.String("session", id.String())),
	}
}

// Apply dispatches one discrete input event through the transition table.
// Anything not accepted by the current state falls through as a no-op.
func (s *Session) Apply(ev Event) {
	switch s.State {
	case StateMenu:
		if ev.Kind == EventStart {
			s.start()
		}
	case StatePlaying:
		switch ev.Kind {
		case EventChoose:
			if s.Phase == PhaseAwaitingAnswer {
				s.answer(ev.Choice)
			}
		case EventShoot:
			s.ResolveShot(ev.At)
		case EventQuit:
			s.toMenu()
		}
	case StateGameOver:
		if ev.Kind == EventRestart {
			s.sound.Notify(SoundClick)
			s.toMenu()
		}
	}
}

// Tick advances one frame: player motion, entity physics, contact damage,
// and the question/pause countdowns, in that order.
func (s *Session) Tick(dt float64, in entity.Input) {
	switch s.State {
	case StatePlaying:
		s.Player.Move(dt, FieldW, FieldH, in)
		s.World.Tick(dt)
		if s.invulnTimer > 0 {
			s.invulnTimer -= dt
		}
		s.resolveContacts()
		if s.State != StatePlaying { // contact damage may have ended the run
			return
		}

		switch s.Phase {
		case PhaseAwaitingAnswer:
			s.QuestionTime -= dt
			if s.QuestionTime <= 0 {
				s.log.Debug("question expired", zap.String("prompt", s.Question.Prompt))
				s.penalize()
				if s.State == StatePlaying {
					s.enterScored(false)
				}
			}
		case PhaseScored:
			s.phaseTimer -= dt
			if s.phaseTimer <= 0 {
				s.nextRound()
			}
		}
	default:
		// menu and game-over screens keep their embers drifting
		s.World.TickParticles(dt)
	}
}

func (s *Session) start() {
	s.Health = MaxHealth
	s.Score = 0
	s.Level = 1
	s.Streak = 0
	s.invulnTimer = 0
	s.World.Clear()
	s.Player.Pos = entity.Vec{X: FieldW / 2, Y: FieldH * 0.75}
	s.Player.Vel = entity.Vec{}

	s.State = StatePlaying
	s.Phase = PhaseAwaitingAnswer
	s.newQuestion()
	s.World.SpawnWave(s.Level)
	s.sound.Notify(SoundClick)
	s.log.Info("session started")
}

func (s *Session) toMenu() {
	s.State = StateMenu
	s.World.Clear()
	s.Question = nil
}

func (s *Session) newQuestion() {
	s.Question = s.gen.Next(s.Level)
	s.QuestionTime = QuestionSeconds
}

// answer scores the chosen option. Out-of-range choices are ignored.
func (s *Session) answer(choice int) {
	q := s.Question
	if q == nil || choice < 0 || choice >= len(q.Choices) {
		return
	}

	if choice == q.Correct {
		s.Streak++
		s.Score += AnswerScore * s.Level
		if s.Streak > 1 {
			s.Score += StreakBonus * s.Streak
		}

		// a correct answer sweeps the field
		for _, e := range s.World.Enemies {
			if e.Alive {
				e.Alive = false
				s.Score += ClearBonus * s.Level
				s.World.AddExplosion(e.Pos, 20, 60, 180)
			}
		}

		s.sound.Notify(SoundCorrect)
		if s.Streak%LevelUpStreak == 0 {
			s.Level++
			s.sound.Notify(SoundLevelUp)
			s.log.Info("level up", zap.Int("level", s.Level), zap.Int("score", s.Score))
		}
		s.enterScored(true)
		return
	}

	s.sound.Notify(SoundIncorrect)
	s.penalize()
	if s.State == StatePlaying {
		s.enterScored(false)
	}
}

// penalize applies the wrong-answer cost: streak gone, health down.
func (s *Session) penalize() {
	s.Streak = 0
	s.damage(WrongAnswerPenalty)
}

func (s *Session) enterScored(correct bool) {
	s.Phase = PhaseScored
	s.phaseTimer = ScoredPause
	s.lastCorrect = correct
}

func (s *Session) nextRound() {
	s.Phase = PhaseAwaitingAnswer
	s.newQuestion()
	s.World.SpawnWave(s.Level)
}

// damage lowers health by n, clamped at zero, and fires the game-over
// transition exactly once.
func (s *Session) damage(n int) {
	if s.State != StatePlaying {
		return
	}
	s.Health -= n
	if s.Health <= 0 {
		s.Health = 0
		s.State = StateGameOver
		s.sound.Notify(SoundGameOver)
		s.log.Info("game over", zap.Int("score", s.Score), zap.Int("level", s.Level))
	}
}

// LastAnswerCorrect reports how the most recent question was resolved, for
// the Scored-phase flash on screen.
func (s *Session) LastAnswerCorrect() bool { return s.lastCorrect }

// Invulnerable reports whether the player is inside the contact debounce
// window. The render layer blinks the ship while this holds.
func (s *Session) Invulnerable() bool { return s.invulnTimer > 0 }
