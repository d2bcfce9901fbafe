// Package ports defines interfaces for external service communication.
package ports

import "context"

// Console is the line-based collaborator the engine plays through.
// ReadLine returns io.EOF once input is exhausted.
type Console interface {
	ShowLife(life int)
	ShowSituation(text string)
	ShowOption(index int, text string)
	ShowInvalidCommand()
	ShowSeparator()
	ShowDeath()
	ReadLine(ctx context.Context) (string, error)
}
