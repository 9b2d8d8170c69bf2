package game

// EventKind classifies something notable that happened during a frame.
type EventKind int

const (
	EventStarted EventKind = iota
	EventServed
	EventWallBounce
	EventCaught
	EventSpeedUp
	EventScored
	EventLimitRaised
	EventGameOver
	EventRestarted
)

var eventNames = [...]string{
	EventStarted:     "started",
	EventServed:      "served",
	EventWallBounce:  "wall_bounce",
	EventCaught:      "caught",
	EventSpeedUp:     "speed_up",
	EventScored:      "scored",
	EventLimitRaised: "limit_raised",
	EventGameOver:    "game_over",
	EventRestarted:   "restarted",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event records a state transition together with the score at that moment.
// Side is meaningful for serves, catches, scores and game over.
type Event struct {
	Kind       EventKind
	Side       Side
	ScoreLeft  int
	ScoreRight int
	Limit      int
}

func (s *State) emit(kind EventKind, side Side) {
	s.events = append(s.events, Event{
		Kind:       kind,
		Side:       side,
		ScoreLeft:  s.scores[Left],
		ScoreRight: s.scores[Right],
		Limit:      s.scoreLimit,
	})
}
