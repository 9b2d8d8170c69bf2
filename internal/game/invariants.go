package game

import (
	"errors"
	"fmt"
	"math"
)

// CheckInvariants reports every structural rule the current state breaks.
// It is used by soak runs; a healthy match always returns nil.
func (s *State) CheckInvariants() error {
	var errs []error
	max := s.cfg.maxPaddleY()
	for _, side := range []Side{Left, Right} {
		if y := s.paddles[side].Y; y < 0 || y > max {
			errs = append(errs, fmt.Errorf("%v paddle y %v outside [0,%v]", side, y, max))
		}
		if s.scores[side] < 0 {
			errs = append(errs, fmt.Errorf("%v score %d negative", side, s.scores[side]))
		}
	}
	if s.scoreLimit != s.cfg.ScoreLimit && s.scoreLimit != s.cfg.ExtendedLimit {
		errs = append(errs, fmt.Errorf("score limit %d not in {%d,%d}", s.scoreLimit, s.cfg.ScoreLimit, s.cfg.ExtendedLimit))
	}
	if s.pointTimer < 0 || math.IsNaN(s.pointTimer) {
		errs = append(errs, fmt.Errorf("point timer %v invalid", s.pointTimer))
	}
	over := s.scores[Left] >= s.scoreLimit || s.scores[Right] >= s.scoreLimit
	if over != (s.phase == GameOver) {
		errs = append(errs, fmt.Errorf("phase %v with score %d-%d and limit %d", s.phase, s.scores[Left], s.scores[Right], s.scoreLimit))
	}
	return errors.Join(errs...)
}
