// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"io"
)

// Console is a mock implementation of ports.Console.
// Inputs are returned line by line; io.EOF follows the last one.
type Console struct {
	Inputs  []string
	ReadErr error
	Events  []string

	// Call tracking
	ReadLineCallCount int
}

// NewConsole creates a mock console that will answer with the given lines.
func NewConsole(inputs ...string) *Console {
	return &Console{Inputs: inputs}
}

// ShowLife records a life event.
func (m *Console) ShowLife(life int) {
	m.Events = append(m.Events, fmt.Sprintf("life %d", life))
}

// ShowSituation records a situation event.
func (m *Console) ShowSituation(text string) {
	m.Events = append(m.Events, "situation "+text)
}

// ShowOption records an option event.
func (m *Console) ShowOption(index int, text string) {
	m.Events = append(m.Events, fmt.Sprintf("option %d %s", index, text))
}

// ShowInvalidCommand records an invalid command event.
func (m *Console) ShowInvalidCommand() {
	m.Events = append(m.Events, "invalid")
}

// ShowSeparator records a separator event.
func (m *Console) ShowSeparator() {
	m.Events = append(m.Events, "separator")
}

// ShowDeath records a death event.
func (m *Console) ShowDeath() {
	m.Events = append(m.Events, "dead")
}

// ReadLine returns the next scripted input.
func (m *Console) ReadLine(_ context.Context) (string, error) {
	m.ReadLineCallCount++
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	if len(m.Inputs) == 0 {
		return "", io.EOF
	}
	line := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return line, nil
}
