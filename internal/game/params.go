package game

import (
	"strconv"

	"pong/internal/core"
)

// Parameters describes the live match state for the debug HUD.
func (s *State) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Match",
			Params: []core.Parameter{
				stringParam("phase", "Phase", s.phase.String()),
				intParam("score_left", "Player 1", s.scores[Left]),
				intParam("score_right", "Player 2", s.scores[Right]),
				intParam("score_limit", "Score limit", s.scoreLimit),
				floatParam("point_timer", "Point timer", s.pointTimer),
			},
		},
		{
			Name: "Ball",
			Params: []core.Parameter{
				floatParam("ball_x", "X", s.ball.X),
				floatParam("ball_y", "Y", s.ball.Y),
				floatParam("ball_vx", "VX", s.ball.VX),
				floatParam("ball_vy", "VY", s.ball.VY),
				boolParam("ball_stuck", "Stuck", s.ball.Stuck),
				stringParam("ball_side", "Held by", s.ball.StuckSide.String()),
			},
		},
		{
			Name: "Paddles",
			Params: []core.Parameter{
				floatParam("paddle_left_y", "Left Y", s.paddles[Left].Y),
				floatParam("paddle_right_y", "Right Y", s.paddles[Right].Y),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
