package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/ports"
)

// Engine defaults.
const (
	DefaultStartTag         = "LUZ"
	DefaultStartLife        = 100
	DefaultInvalidSelection = 99
)

// EngineOptions configures a play session.
type EngineOptions struct {
	StartTag         string
	StartLife        *int // Nil means DefaultStartLife; zero and negative values are kept
	InvalidSelection int  // Index substituted for unparsable or missing input
}

// withDefaults fills unset values with the engine defaults.
func (o EngineOptions) withDefaults() EngineOptions {
	if o.StartTag == "" {
		o.StartTag = DefaultStartTag
	}
	if o.StartLife == nil {
		life := DefaultStartLife
		o.StartLife = &life
	}
	if o.InvalidSelection <= 0 {
		o.InvalidSelection = DefaultInvalidSelection
	}
	return o
}

// TurnResult describes how a selection was applied.
type TurnResult struct {
	Valid  bool
	Option entities.StoryRecord // Selected option, zero when invalid
	Delta  int                  // Life change applied this turn
}

// Step applies a selection made at node to state.
//
// A valid index moves to the option's tag and applies the option's delta.
// An invalid index keeps the tag and applies the node's own delta.
func Step(node entities.StoryNode, state entities.PlayState, index int) (entities.PlayState, TurnResult) {
	if opt, ok := node.Option(index); ok {
		state.Tag = opt.Tag
		state.Life += opt.LifeDelta
		return state, TurnResult{Valid: true, Option: opt, Delta: opt.LifeDelta}
	}

	state.Life += node.Record.LifeDelta
	return state, TurnResult{Delta: node.Record.LifeDelta}
}

// Engine walks a story graph under user control.
type Engine struct {
	graph entities.Graph
	opts  EngineOptions
}

// StartLife returns an option value for EngineOptions.StartLife.
func StartLife(life int) *int {
	return &life
}

// NewEngine creates an engine over a built graph.
func NewEngine(graph entities.Graph, opts EngineOptions) *Engine {
	return &Engine{
		graph: graph,
		opts:  opts.withDefaults(),
	}
}

// Options returns the effective options.
func (e *Engine) Options() EngineOptions {
	return e.opts
}

// Run plays turns through console until the story ends, life runs out or input closes.
// Errors are returned only when reading input fails for a reason other than EOF.
func (e *Engine) Run(ctx context.Context, console ports.Console) (entities.Outcome, error) {
	outcome := entities.Outcome{
		State: entities.PlayState{Tag: e.opts.StartTag, Life: *e.opts.StartLife},
		Path:  []string{},
	}

	for {
		if ctx.Err() != nil {
			outcome.Reason = entities.EndCanceled
			return outcome, nil
		}

		console.ShowLife(outcome.State.Life)

		node, ok := e.graph.Lookup(outcome.State.Tag)
		if !ok {
			outcome.Reason = entities.EndFinished
			return outcome, nil
		}
		outcome.Path = append(outcome.Path, node.Tag())

		console.ShowSituation(node.Record.Text)
		for i, opt := range node.Options {
			console.ShowOption(i, opt.Text)
		}

		index, inputClosed, err := e.readSelection(ctx, console)
		if err != nil {
			if ctx.Err() != nil {
				outcome.Reason = entities.EndCanceled
				return outcome, nil
			}
			return outcome, fmt.Errorf("reading selection: %w", err)
		}

		var turn TurnResult
		outcome.State, turn = Step(node, outcome.State, index)
		outcome.Turns++

		if !turn.Valid {
			console.ShowInvalidCommand()
		}
		console.ShowSeparator()

		if outcome.State.Life <= 0 {
			console.ShowDeath()
			outcome.Reason = entities.EndDead
			return outcome, nil
		}
		if inputClosed {
			outcome.Reason = entities.EndInputClosed
			return outcome, nil
		}
	}
}

// readSelection reads one line and turns it into an option index.
// End of input yields the invalid selection and reports the input as closed.
func (e *Engine) readSelection(ctx context.Context, console ports.Console) (int, bool, error) {
	line, err := console.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		return e.opts.InvalidSelection, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return entities.ParseUintOr(line, e.opts.InvalidSelection), false, nil
}
