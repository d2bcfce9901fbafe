package entities

// EndReason describes why a play session stopped.
type EndReason string

// End reasons.
const (
	EndFinished    EndReason = "finished"     // current tag not in graph
	EndDead        EndReason = "dead"         // life dropped to zero or below
	EndInputClosed EndReason = "input_closed" // input stream ended
	EndCanceled    EndReason = "canceled"
)

// PlayState is the mutable part of a session.
type PlayState struct {
	Tag  string `json:"tag"`
	Life int    `json:"life"`
}

// Outcome summarizes a finished session.
type Outcome struct {
	Reason EndReason `json:"reason"`
	State  PlayState `json:"state"`
	Turns  int       `json:"turns"`
	Path   []string  `json:"path"`
}

// Dead reports whether the session ended by running out of life.
func (o Outcome) Dead() bool {
	return o.Reason == EndDead
}
