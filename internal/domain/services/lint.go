package services

import (
	"fmt"
	"sort"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// WarningCode identifies a kind of lint finding.
type WarningCode string

// Lint finding codes.
const (
	WarnMissingStart   WarningCode = "missing_start"
	WarnOrphanOption   WarningCode = "orphan_option"
	WarnDuplicateTag   WarningCode = "duplicate_tag"
	WarnUnknownKind    WarningCode = "unknown_kind"
	WarnDanglingTarget WarningCode = "dangling_target"
	WarnUnreachable    WarningCode = "unreachable"
)

// Warning is a single lint finding. Line is 0 when it has no source position.
type Warning struct {
	Code    WarningCode
	Line    int
	Tag     string
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", w.Line, w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// LintReport summarizes a story and lists what the builder silently tolerates.
type LintReport struct {
	Nodes    int
	Options  int
	Warnings []Warning
}

// Clean reports whether no findings were produced.
func (r LintReport) Clean() bool {
	return len(r.Warnings) == 0
}

// Lint builds the graph the same way BuildGraph does and reports every record
// the fold dropped or replaced, choices leading nowhere and nodes the start
// tag cannot reach. It never changes the graph.
func Lint(records []entities.StoryRecord, startTag string) LintReport {
	var warnings []Warning

	state := NewBuildState()
	for _, rec := range records {
		switch rec.Kind {
		case entities.KindSituation:
			if prev, ok := state.Graph[rec.Tag]; ok {
				warnings = append(warnings, Warning{
					Code:    WarnDuplicateTag,
					Line:    rec.Line,
					Tag:     rec.Tag,
					Message: fmt.Sprintf("situation %q redefined, %d option(s) of line %d are lost", rec.Tag, len(prev.Options), prev.Record.Line),
				})
			}
		case entities.KindOption:
			if !state.HasCursor {
				warnings = append(warnings, Warning{
					Code:    WarnOrphanOption,
					Line:    rec.Line,
					Tag:     rec.Tag,
					Message: fmt.Sprintf("option %q appears before any situation and is dropped", rec.Text),
				})
			}
		default:
			warnings = append(warnings, Warning{
				Code:    WarnUnknownKind,
				Line:    rec.Line,
				Tag:     rec.Tag,
				Message: fmt.Sprintf("unknown kind %q is ignored", rec.Kind),
			})
		}
		state = Fold(state, rec)
	}

	graph := state.Graph
	warnings = append(warnings, danglingTargets(graph)...)
	warnings = append(warnings, unreachableNodes(graph, startTag)...)

	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Line < warnings[j].Line
	})

	return LintReport{
		Nodes:    len(graph),
		Options:  graph.OptionCount(),
		Warnings: warnings,
	}
}

// danglingTargets reports options whose target tag has no situation.
func danglingTargets(graph entities.Graph) []Warning {
	var warnings []Warning
	for _, tag := range graph.Tags() {
		for _, opt := range graph[tag].Options {
			if _, ok := graph[opt.Tag]; ok {
				continue
			}
			warnings = append(warnings, Warning{
				Code:    WarnDanglingTarget,
				Line:    opt.Line,
				Tag:     opt.Tag,
				Message: fmt.Sprintf("option %q in %q leads to unknown tag %q and ends the story", opt.Text, tag, opt.Tag),
			})
		}
	}
	return warnings
}

// unreachableNodes walks the graph from startTag and reports nodes never visited.
func unreachableNodes(graph entities.Graph, startTag string) []Warning {
	if _, ok := graph[startTag]; !ok {
		return []Warning{{
			Code:    WarnMissingStart,
			Tag:     startTag,
			Message: fmt.Sprintf("start tag %q has no situation, the story ends immediately", startTag),
		}}
	}

	visited := map[string]bool{startTag: true}
	queue := []string{startTag}
	for len(queue) > 0 {
		tag := queue[0]
		queue = queue[1:]
		for _, opt := range graph[tag].Options {
			if visited[opt.Tag] {
				continue
			}
			if _, ok := graph[opt.Tag]; !ok {
				continue
			}
			visited[opt.Tag] = true
			queue = append(queue, opt.Tag)
		}
	}

	var warnings []Warning
	for _, tag := range graph.Tags() {
		if visited[tag] {
			continue
		}
		warnings = append(warnings, Warning{
			Code:    WarnUnreachable,
			Line:    graph[tag].Record.Line,
			Tag:     tag,
			Message: fmt.Sprintf("situation %q cannot be reached from %q", tag, startTag),
		})
	}
	return warnings
}
