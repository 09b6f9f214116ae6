package game

import "github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/entity"

// EventKind enumerates the discrete inputs the session accepts. Events
// outside the current state's accepted set are no-ops.
type EventKind int

const (
	EventStart   EventKind = iota // Menu → Playing
	EventRestart                  // GameOver → Menu
	EventQuit                     // Playing → Menu, discards the session
	EventChoose                   // answer button click, uses Choice
	EventShoot                    // shot at a point, uses At
)

type Event struct {
	Kind   EventKind
	Choice int
	At     entity.Vec
}

// Sound identifies a fire-and-forget audio cue. The session never waits on
// or reads anything back from the notifier.
type Sound int

const (
	SoundClick Sound = iota
	SoundShoot
	SoundEnemyHit
	SoundEnemyExplode
	SoundPlayerHit
	SoundCorrect
	SoundIncorrect
	SoundLevelUp
	SoundGameOver
)

type Notifier interface {
	Notify(Sound)
}

// NopNotifier discards every cue.
type NopNotifier struct{}

func (NopNotifier) Notify(Sound) {}
