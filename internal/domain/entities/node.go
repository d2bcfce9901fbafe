package entities

import "sort"

// StoryNode is a situation together with the choices attached to it, in file order.
type StoryNode struct {
	Record  StoryRecord   `json:"record"`
	Options []StoryRecord `json:"options"`
}

// NewStoryNode creates a node with no options.
func NewStoryNode(record StoryRecord) StoryNode {
	return StoryNode{Record: record, Options: []StoryRecord{}}
}

// Tag returns the node key.
func (n StoryNode) Tag() string {
	return n.Record.Tag
}

// Option returns the choice at position i.
func (n StoryNode) Option(i int) (StoryRecord, bool) {
	if i < 0 || i >= len(n.Options) {
		return StoryRecord{}, false
	}
	return n.Options[i], true
}

// Graph maps node tags to nodes.
type Graph map[string]StoryNode

// Lookup returns the node stored under tag.
func (g Graph) Lookup(tag string) (StoryNode, bool) {
	n, ok := g[tag]
	return n, ok
}

// Tags returns all node tags in sorted order.
func (g Graph) Tags() []string {
	tags := make([]string, 0, len(g))
	for tag := range g {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// OptionCount returns the total number of choices in the graph.
func (g Graph) OptionCount() int {
	count := 0
	for _, n := range g {
		count += len(n.Options)
	}
	return count
}
