package services

import "github.com/ersonp/lore-story/internal/domain/entities"

// BuildState is the accumulator of the graph fold.
// Cursor is the tag of the most recent situation; choices attach to it.
type BuildState struct {
	Graph     entities.Graph
	Cursor    string
	HasCursor bool
}

// NewBuildState returns an empty accumulator with no cursor.
func NewBuildState() BuildState {
	return BuildState{Graph: make(entities.Graph)}
}

// Fold applies one record to the accumulator and returns the updated state.
//
// A situation replaces any node already stored under its tag, options included,
// and moves the cursor. An option is appended to the cursor's node, or dropped
// when no situation has been seen yet. Other kinds are ignored.
func Fold(state BuildState, rec entities.StoryRecord) BuildState {
	switch rec.Kind {
	case entities.KindSituation:
		state.Graph[rec.Tag] = entities.NewStoryNode(rec)
		state.Cursor = rec.Tag
		state.HasCursor = true
	case entities.KindOption:
		if !state.HasCursor {
			return state
		}
		node, ok := state.Graph[state.Cursor]
		if !ok {
			return state
		}
		node.Options = append(node.Options, rec)
		state.Graph[state.Cursor] = node
	}
	return state
}

// BuildGraph folds records, in order, into a story graph.
func BuildGraph(records []entities.StoryRecord) entities.Graph {
	state := NewBuildState()
	for _, rec := range records {
		state = Fold(state, rec)
	}
	return state.Graph
}
