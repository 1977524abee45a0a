// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

// Batch is a half-open range [Start, End) of linear work indices.
// Batches handed out by a Partitioner are disjoint and together cover
// the whole work area exactly once.
type Batch struct {
	Start int
	End   int
}

// Len returns the number of indices in the batch.
func (b Batch) Len() int {
	return b.End - b.Start
}

// EngineState enumerates the lifecycle of a compute engine.
type EngineState int

const (
	EngineNotStarted EngineState = iota
	EngineRunning
	EngineJoined
)

func (s EngineState) String() string {
	switch s {
	case EngineNotStarted:
		return "not-started"
	case EngineRunning:
		return "running"
	case EngineJoined:
		return "joined"
	default:
		return "unknown"
	}
}
