package render

import (
	"fmt"

	"pong/internal/core"
	"pong/internal/game"
)

// Label is a line of text anchored at its baseline in screen space.
type Label struct {
	Text string
	X, Y int
}

// Scene is everything a painter needs for one frame, already converted to
// screen space (y grows downwards).
type Scene struct {
	Size   core.Size
	Rects  []core.Rect
	Labels []Label
}

// Build lays out the frame for the current match state. The start screen
// shows only the title; during play and after the match the court, scores
// and any game-over message are drawn.
func Build(s *game.State) Scene {
	cfg := s.Config()
	size := cfg.Size()
	w, h := size.W, size.H
	sc := Scene{Size: size}

	if s.Phase() == game.NotStarted {
		sc.Labels = append(sc.Labels,
			Label{Text: "PONG", X: w/2 - 50, Y: h/2 - 100},
			Label{Text: "Press ENTER to Start", X: w/2 - 150, Y: h / 2},
		)
		return sc
	}

	sc.Rects = append(sc.Rects,
		s.PaddleRect(game.Left).FlipY(cfg.Height),
		s.PaddleRect(game.Right).FlipY(cfg.Height),
		s.BallRect().FlipY(cfg.Height),
	)
	sc.Labels = append(sc.Labels,
		Label{Text: fmt.Sprintf("Player 1: %d", s.Score(game.Left)), X: 50, Y: 50},
		Label{Text: fmt.Sprintf("Player 2: %d", s.Score(game.Right)), X: w - 200, Y: 50},
	)
	if winner, ok := s.Winner(); ok {
		sc.Labels = append(sc.Labels,
			Label{Text: fmt.Sprintf("Game Over! %s Wins!", winner.Player()), X: w/2 - 200, Y: h/2 - 50},
			Label{Text: "Press Q to Restart", X: w/2 - 150, Y: h/2 + 50},
		)
	}
	return sc
}
