package logging

import (
	"go.uber.org/zap"

	"pong/internal/game"
)

// LogEvents writes one line per event. Bounces and catches are frequent and
// go to debug; everything that changes the match goes to info.
func LogEvents(log *zap.Logger, events []game.Event) {
	for _, ev := range events {
		fields := []zap.Field{
			zap.String("event", ev.Kind.String()),
			zap.Int("score_left", ev.ScoreLeft),
			zap.Int("score_right", ev.ScoreRight),
		}
		switch ev.Kind {
		case game.EventWallBounce:
			log.Debug("rally", fields...)
		case game.EventCaught, game.EventServed:
			log.Debug("rally", append(fields, zap.Stringer("side", ev.Side))...)
		case game.EventSpeedUp:
			log.Info("ball sped up", fields...)
		case game.EventScored:
			log.Info("point scored", append(fields, zap.String("scorer", ev.Side.Player()))...)
		case game.EventLimitRaised:
			log.Info("score limit raised", append(fields, zap.Int("limit", ev.Limit))...)
		case game.EventGameOver:
			log.Info("game over", append(fields, zap.String("winner", ev.Side.Player()))...)
		case game.EventStarted:
			log.Info("match started", fields...)
		case game.EventRestarted:
			log.Info("match restarted", fields...)
		}
	}
}
