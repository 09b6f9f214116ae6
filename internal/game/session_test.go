package game

import (
	"math/rand"
	"testing"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/entity"
)

// recorder counts cues so tests can assert the audio collaborator was
// poked without any real backend.
type recorder struct {
	cues map[Sound]int
}

func newRecorder() *recorder         { return &recorder{cues: map[Sound]int{}} }
func (r *recorder) Notify(snd Sound) { r.cues[snd]++ }

func newTestSession(seed int64) *Session {
	return NewSession(rand.New(rand.NewSource(seed)), nil, nil)
}

func startSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s := newTestSession(seed)
	s.Apply(Event{Kind: EventStart})
	if s.State != StatePlaying {
		t.Fatal("start event did not enter playing state")
	}
	return s
}

// answerCorrectly clicks the correct choice and runs out the scored pause.
func answerCorrectly(s *Session) {
	s.Apply(Event{Kind: EventChoose, Choice: s.Question.Correct})
	for s.Phase == PhaseScored {
		s.Tick(1.0/60.0, entity.Input{})
	}
}

func TestStartInitializesSession(t *testing.T) {
	s := startSession(t, 1)

	if s.Health != MaxHealth {
		t.Errorf("health = %d, want %d", s.Health, MaxHealth)
	}
	if s.Score != 0 || s.Level != 1 || s.Streak != 0 {
		t.Errorf("score/level/streak = %d/%d/%d, want 0/1/0", s.Score, s.Level, s.Streak)
	}
	if s.Question == nil {
		t.Fatal("no question after start")
	}
	if len(s.World.Enemies) == 0 {
		t.Fatal("no enemies spawned after start")
	}
}

func TestMenuIgnoresPlayingEvents(t *testing.T) {
	s := newTestSession(2)
	s.Apply(Event{Kind: EventChoose, Choice: 0})
	s.Apply(Event{Kind: EventShoot, At: entity.Vec{X: 100, Y: 100}})
	s.Apply(Event{Kind: EventRestart})
	if s.State != StateMenu || s.Question != nil || s.Score != 0 {
		t.Fatal("menu state mutated by non-start events")
	}
}

func TestFiveCorrectAnswers(t *testing.T) {
	s := startSession(t, 3)
	// park the ship out of harm's way and keep enemies out of the math
	s.World.Clear()

	prev := s.Score
	for i := 0; i < 5; i++ {
		level := s.Level
		streak := s.Streak + 1
		want := prev + AnswerScore*level
		if streak > 1 {
			want += StreakBonus * streak
		}

		s.Apply(Event{Kind: EventChoose, Choice: s.Question.Correct})
		if s.Score != want {
			t.Fatalf("answer %d: score = %d, want %d", i+1, s.Score, want)
		}
		if s.Score < prev {
			t.Fatalf("score decreased across a correct answer: %d -> %d", prev, s.Score)
		}
		prev = s.Score

		for s.Phase == PhaseScored {
			s.Tick(1.0/60.0, entity.Input{})
		}
		s.World.Clear()
	}

	if s.Health != MaxHealth {
		t.Errorf("health changed to %d while only answering", s.Health)
	}
	// 5 correct answers with LevelUpStreak=3 crosses one threshold
	if s.Level != 2 {
		t.Errorf("level = %d after 5 correct answers, want 2", s.Level)
	}
}

func TestWrongAnswerPenalty(t *testing.T) {
	s := startSession(t, 4)
	s.World.Clear()
	answerCorrectly(s)
	s.World.Clear()
	if s.Streak != 1 {
		t.Fatalf("streak = %d, want 1", s.Streak)
	}

	wrong := (s.Question.Correct + 1) % len(s.Question.Choices)
	score := s.Score
	s.Apply(Event{Kind: EventChoose, Choice: wrong})

	if s.Health != MaxHealth-WrongAnswerPenalty {
		t.Errorf("health = %d, want %d", s.Health, MaxHealth-WrongAnswerPenalty)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d after wrong answer, want 0", s.Streak)
	}
	if s.Score != score {
		t.Errorf("score moved on a wrong answer: %d -> %d", score, s.Score)
	}
	if s.Phase != PhaseScored {
		t.Error("wrong answer should still advance to the scored pause")
	}
}

func TestChooseIgnoredOutsideAwaitingAnswer(t *testing.T) {
	s := startSession(t, 5)
	s.World.Clear()
	s.Apply(Event{Kind: EventChoose, Choice: s.Question.Correct})
	score := s.Score

	// second click lands in the scored pause
	s.Apply(Event{Kind: EventChoose, Choice: s.Question.Correct})
	if s.Score != score {
		t.Fatalf("choice accepted during scored pause: %d -> %d", score, s.Score)
	}
}

func TestQuestionTimeoutCountsAsWrong(t *testing.T) {
	s := startSession(t, 6)
	s.World.Clear()

	for i := 0; i < int(QuestionSeconds*60)+2; i++ {
		s.Tick(1.0/60.0, entity.Input{})
		s.World.Clear() // keep respawned waves away from the ship
	}

	if s.Health >= MaxHealth {
		t.Errorf("health = %d, want at least one timeout penalty applied", s.Health)
	}
	if s.Streak != 0 {
		t.Errorf("streak survived a timeout: %d", s.Streak)
	}
}

func TestContactDamageAndDebounce(t *testing.T) {
	s := startSession(t, 7)
	s.World.Clear()

	e := s.World.SpawnEnemy(1)
	e.Pos = s.Player.Pos
	e.HP = 100 // survives the counter-hit

	s.Tick(1.0/60.0, entity.Input{})
	if s.Health != MaxHealth-ContactDamage {
		t.Fatalf("health = %d after one contact, want %d", s.Health, MaxHealth-ContactDamage)
	}
	if !s.Invulnerable() {
		t.Fatal("no invulnerability window after contact")
	}

	// same overlap next tick must not land again
	e.Pos = s.Player.Pos
	s.Tick(1.0/60.0, entity.Input{})
	if s.Health != MaxHealth-ContactDamage {
		t.Fatalf("debounce failed: health = %d", s.Health)
	}
}

func TestRepeatedContactEndsGameExactlyOnce(t *testing.T) {
	rec := newRecorder()
	s := NewSession(rand.New(rand.NewSource(8)), rec, nil)
	s.Apply(Event{Kind: EventStart})
	s.World.Clear()

	hits := MaxHealth/ContactDamage + 2
	for i := 0; i < hits; i++ {
		if s.State == StatePlaying {
			e := s.World.SpawnEnemy(1)
			e.Pos = s.Player.Pos
			e.HP = 100
		}
		for j := 0; j < int(InvulnSeconds*60)+2; j++ {
			s.Tick(1.0/60.0, entity.Input{})
		}
	}

	if s.State != StateGameOver {
		t.Fatalf("state = %v, want game over", s.State)
	}
	if s.Health != 0 {
		t.Fatalf("health = %d, want clamped at 0", s.Health)
	}
	if rec.cues[SoundGameOver] != 1 {
		t.Fatalf("game over fired %d times, want exactly 1", rec.cues[SoundGameOver])
	}

	// terminal: no further score or health mutation
	score, health := s.Score, s.Health
	s.Apply(Event{Kind: EventChoose, Choice: 0})
	s.Apply(Event{Kind: EventShoot, At: s.Player.Pos})
	s.Tick(1.0/60.0, entity.Input{})
	if s.Score != score || s.Health != health {
		t.Fatal("session mutated after game over")
	}
}

func TestRestartReturnsToMenu(t *testing.T) {
	s := startSession(t, 9)
	// wrong answers all the way down
	for s.State == StatePlaying {
		if s.Phase == PhaseAwaitingAnswer {
			s.Apply(Event{Kind: EventChoose, Choice: (s.Question.Correct + 1) % len(s.Question.Choices)})
		} else {
			s.Tick(1.0/60.0, entity.Input{})
		}
		s.World.Clear() // keep enemies out of this scenario
	}

	s.Apply(Event{Kind: EventRestart})
	if s.State != StateMenu {
		t.Fatalf("state = %v after restart, want menu", s.State)
	}
	if s.Question != nil || len(s.World.Enemies) != 0 || len(s.World.Particles) != 0 {
		t.Fatal("restart did not discard the session's entities")
	}
}

func TestQuitDiscardsRun(t *testing.T) {
	s := startSession(t, 10)
	s.Apply(Event{Kind: EventQuit})
	if s.State != StateMenu {
		t.Fatalf("state = %v after quit, want menu", s.State)
	}
	if len(s.World.Enemies) != 0 || s.Question != nil {
		t.Fatal("quit did not discard entities and question")
	}
}

func TestCorrectAnswerSweepsEnemies(t *testing.T) {
	rec := newRecorder()
	s := NewSession(rand.New(rand.NewSource(11)), rec, nil)
	s.Apply(Event{Kind: EventStart})
	s.World.Clear()
	for i := 0; i < 4; i++ {
		s.World.SpawnEnemy(1)
	}

	score := s.Score
	s.Apply(Event{Kind: EventChoose, Choice: s.Question.Correct})

	want := score + AnswerScore*1 + 4*ClearBonus*1
	if s.Score != want {
		t.Fatalf("score = %d after sweeping 4 enemies, want %d", s.Score, want)
	}
	for _, e := range s.World.Enemies {
		if e.Alive {
			t.Fatal("live enemy survived a correct answer")
		}
	}
	if rec.cues[SoundCorrect] != 1 {
		t.Fatalf("correct cue fired %d times, want 1", rec.cues[SoundCorrect])
	}
}
