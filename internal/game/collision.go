package game

import "github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/entity"

// ResolveShot applies a shot at p to the nearest live enemy whose body
// contains the point, ties broken by creation order. A shot into empty
// space is a no-op. Returns true if something was hit.
func (s *Session) ResolveShot(p entity.Vec) bool {
	if s.State != StatePlaying {
		return false
	}
	s.sound.Notify(SoundShoot)

	var target *entity.Enemy
	best := 1e9
	for _, e := range s.World.Enemies {
		if !e.Alive {
			continue
		}
		d := entity.Dist(e.Pos, p)
		if d > ShotRadius+entity.EnemyRadius {
			continue
		}
		if d < best || (d == best && target != nil && e.Seq < target.Seq) {
			best = d
			target = e
		}
	}
	if target == nil {
		return false
	}

	s.hitEnemy(target, true)
	return true
}

// resolveContacts damages the player once for any live enemy overlapping the
// ship, then opens the invulnerability window so the same contact cannot
// land twice.
func (s *Session) resolveContacts() {
	if s.invulnTimer > 0 {
		return
	}
	for _, e := range s.World.Enemies {
		if !e.Alive {
			continue
		}
		if entity.Dist(e.Pos, s.Player.Pos) > entity.EnemyRadius+entity.PlayerRadius {
			continue
		}

		s.invulnTimer = InvulnSeconds
		s.hitEnemy(e, false)
		s.sound.Notify(SoundPlayerHit)
		s.World.AddExplosion(s.Player.Pos, 15, 60, 150)
		s.damage(ContactDamage)
		return
	}
}

// hitEnemy takes one HP off an enemy and explodes it on a kill. Shot kills
// score; a kill by ramming the player does not.
func (s *Session) hitEnemy(e *entity.Enemy, score bool) {
	e.HP--
	s.World.AddExplosion(e.Pos, 8, 40, 120)
	s.sound.Notify(SoundEnemyHit)

	if e.HP <= 0 {
		e.Alive = false
		if score {
			s.Score += KillScore * s.Level
		}
		s.World.AddExplosion(e.Pos, 30, 80, 240)
		s.sound.Notify(SoundEnemyExplode)
	}
}
