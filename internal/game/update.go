package game

import "math"

// Update advances the match by one frame. Outside the Playing phase only the
// start or restart key is honoured and no physics runs; the frame that
// leaves NotStarted does not simulate either.
func (s *State) Update(dt float64, in Input) {
	s.events = s.events[:0]
	switch s.phase {
	case NotStarted:
		if in.Start {
			s.phase = Playing
			s.emit(EventStarted, Left)
		}
		return
	case GameOver:
		if in.Restart {
			s.restart()
		}
		return
	}
	s.step(s.sanitizeDelta(dt), in)
}

// sanitizeDelta turns invalid time steps into no-ops and, when MaxDelta is
// set, caps long stalls.
func (s *State) sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if s.cfg.MaxDelta > 0 && dt > s.cfg.MaxDelta {
		return s.cfg.MaxDelta
	}
	return dt
}

func (s *State) step(dt float64, in Input) {
	s.pointTimer += dt
	if s.pointTimer >= s.cfg.PointTimeout {
		s.ball.VX *= s.cfg.SpeedMultiplier
		s.ball.VY *= s.cfg.SpeedMultiplier
		s.pointTimer = 0
		s.emit(EventSpeedUp, s.ball.StuckSide)
	}

	s.movePaddle(Left, in.LeftUp, in.LeftDown, dt)
	s.movePaddle(Right, in.RightUp, in.RightDown, dt)

	if s.ball.Stuck {
		s.stickBall()
		if in.Release {
			s.release()
		}
		return
	}

	b := &s.ball
	b.X += b.VX * dt
	b.Y += b.VY * dt

	size := s.cfg.BallSize
	if b.Y <= 0 || b.Y+size >= s.cfg.Height {
		b.VY = -b.VY
		s.emit(EventWallBounce, Left)
	}

	ball := s.BallRect()
	switch {
	case b.X <= s.cfg.PaddleX(Left)+s.cfg.PaddleWidth && ball.OverlapsY(s.PaddleRect(Left)):
		s.catch(Left)
	case b.X+size >= s.cfg.PaddleX(Right) && ball.OverlapsY(s.PaddleRect(Right)):
		s.catch(Right)
	}

	switch {
	case b.X < 0:
		s.score(Right)
	case b.X+size > s.cfg.Width:
		s.score(Left)
	}
}

// movePaddle applies both held directions, so up+down cancel out.
func (s *State) movePaddle(side Side, up, down bool, dt float64) {
	p := &s.paddles[side]
	if up {
		p.Y += s.cfg.PaddleSpeed * dt
	}
	if down {
		p.Y -= s.cfg.PaddleSpeed * dt
	}
	p.Y = math.Max(0, math.Min(s.cfg.maxPaddleY(), p.Y))
}

// catch holds the ball against a paddle. The velocity is left untouched and
// the position snaps to the paddle on the next frame.
func (s *State) catch(side Side) {
	s.ball.Stuck = true
	s.ball.StuckSide = side
	s.emit(EventCaught, side)
}

// stickBall places a held ball flush with the inner face of its paddle,
// vertically centered on it.
func (s *State) stickBall() {
	p := s.paddles[s.ball.StuckSide]
	if s.ball.StuckSide == Left {
		s.ball.X = p.X + s.cfg.PaddleWidth
	} else {
		s.ball.X = p.X - s.cfg.BallSize
	}
	s.ball.Y = p.Y + s.cfg.PaddleHeight/2 - s.cfg.BallSize/2
}

func (s *State) release() {
	if s.ball.StuckSide == Left {
		s.ball.VX = s.cfg.ServeSpeed
	} else {
		s.ball.VX = -s.cfg.ServeSpeed
	}
	if s.coin.Bool() {
		s.ball.VY = s.cfg.ServeSpeed
	} else {
		s.ball.VY = -s.cfg.ServeSpeed
	}
	s.ball.Stuck = false
	s.emit(EventServed, s.ball.StuckSide)
}

func (s *State) score(side Side) {
	s.scores[side]++
	s.emit(EventScored, side)
	if s.scores[Left] >= s.cfg.DeuceScore && s.scores[Right] >= s.cfg.DeuceScore && s.scoreLimit < s.cfg.ExtendedLimit {
		s.scoreLimit = s.cfg.ExtendedLimit
		s.emit(EventLimitRaised, side)
	}
	if s.scores[Left] >= s.scoreLimit || s.scores[Right] >= s.scoreLimit {
		s.phase = GameOver
		winner, _ := s.Winner()
		s.emit(EventGameOver, winner)
	}
	s.resetBall()
}

// resetBall serves from a randomly chosen paddle and restarts the rally timer.
func (s *State) resetBall() {
	s.ball.Stuck = true
	if s.coin.Bool() {
		s.ball.StuckSide = Left
	} else {
		s.ball.StuckSide = Right
	}
	s.stickBall()
	s.pointTimer = 0
}

func (s *State) restart() {
	s.scores = [2]int{}
	s.scoreLimit = s.cfg.ScoreLimit
	s.phase = Playing
	s.resetBall()
	s.emit(EventRestarted, s.ball.StuckSide)
}
