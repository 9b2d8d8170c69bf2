// Package game implements the two-player paddle game simulation. It owns no
// window, clock or input device: callers hand Update a time step and an
// input snapshot once per frame and read the resulting state back.
package game

import (
	"pong/internal/core"
)

// Side identifies a paddle and the player controlling it.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Player returns the human-facing player label for the side.
func (s Side) Player() string {
	if s == Left {
		return "Player 1"
	}
	return "Player 2"
}

// Phase is the match lifecycle stage.
type Phase int

const (
	NotStarted Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Input is one frame's controller snapshot. The movement fields report keys
// currently held; Start, Release and Restart report keys pressed this frame.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool

	Start   bool
	Release bool
	Restart bool
}

// Paddle is a player's bat. X is fixed by the config; Y is its bottom edge.
type Paddle struct {
	X, Y float64
}

// Ball tracks the serve state alongside the kinematics. While Stuck the
// velocity is ignored and the position follows the holding paddle.
type Ball struct {
	X, Y      float64
	VX, VY    float64
	Stuck     bool
	StuckSide Side
}

// State is the complete match model.
type State struct {
	cfg  Config
	coin core.Flipper

	paddles [2]Paddle
	ball    Ball

	scores     [2]int
	scoreLimit int
	phase      Phase
	pointTimer float64

	events []Event
}

// New creates a match in the NotStarted phase using a seeded generator.
func New(cfg Config, seed int64) *State {
	return NewWithFlipper(cfg, core.NewRNG(seed))
}

// NewWithFlipper creates a match drawing its coin flips from coin.
func NewWithFlipper(cfg Config, coin core.Flipper) *State {
	s := &State{cfg: cfg, coin: coin}
	s.init()
	return s
}

// Reset reinitializes the match with a fresh generator seeded by seed.
func (s *State) Reset(seed int64) {
	s.coin = core.NewRNG(seed)
	s.init()
}

func (s *State) init() {
	s.paddles[Left] = Paddle{X: s.cfg.PaddleX(Left), Y: s.cfg.restY()}
	s.paddles[Right] = Paddle{X: s.cfg.PaddleX(Right), Y: s.cfg.restY()}
	s.ball = Ball{}
	s.scores = [2]int{}
	s.scoreLimit = s.cfg.ScoreLimit
	s.phase = NotStarted
	s.events = s.events[:0]
	s.resetBall()
}

// Config returns the configuration the match was built with.
func (s *State) Config() Config { return s.cfg }

// Phase returns the current lifecycle stage.
func (s *State) Phase() Phase { return s.phase }

// Paddle returns a copy of the paddle on side.
func (s *State) Paddle(side Side) Paddle { return s.paddles[side] }

// Ball returns a copy of the ball.
func (s *State) Ball() Ball { return s.ball }

// Score returns the points held by side.
func (s *State) Score(side Side) int { return s.scores[side] }

// ScoreLimit returns the points currently needed to win.
func (s *State) ScoreLimit() int { return s.scoreLimit }

// PointTimer returns the seconds elapsed since the last serve or speed-up.
func (s *State) PointTimer() float64 { return s.pointTimer }

// Winner reports the side that reached the score limit. ok is false unless
// the match is over.
func (s *State) Winner() (side Side, ok bool) {
	if s.phase != GameOver {
		return Left, false
	}
	if s.scores[Left] >= s.scoreLimit {
		return Left, true
	}
	return Right, true
}

// PaddleRect returns the world-space bounds of a paddle.
func (s *State) PaddleRect(side Side) core.Rect {
	p := s.paddles[side]
	return core.Rect{X: p.X, Y: p.Y, W: s.cfg.PaddleWidth, H: s.cfg.PaddleHeight}
}

// BallRect returns the world-space bounds of the ball.
func (s *State) BallRect() core.Rect {
	return core.Rect{X: s.ball.X, Y: s.ball.Y, W: s.cfg.BallSize, H: s.cfg.BallSize}
}

// Events returns what happened during the most recent Update. The slice is
// reused by the next call.
func (s *State) Events() []Event { return s.events }
