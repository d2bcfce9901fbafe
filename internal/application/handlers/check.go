package handlers

import (
	"io"
	"log"

	"github.com/ersonp/lore-story/internal/domain/services"
)

// CheckHandler reports problems in a story file without playing it.
type CheckHandler struct {
	logger *log.Logger
}

// NewCheckHandler creates a new check handler.
func NewCheckHandler(logger *log.Logger) *CheckHandler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &CheckHandler{logger: logger}
}

// CheckResult contains the result of checking a story file.
type CheckResult struct {
	File    string
	Records int
	Report  services.LintReport
}

// Handle parses the file and lints the records against startTag.
func (h *CheckHandler) Handle(filePath string, opts SourceOptions, startTag string) (*CheckResult, error) {
	records, err := LoadRecords(filePath, opts)
	if err != nil {
		return nil, err
	}

	report := services.Lint(records, startTagOrDefault(startTag))
	h.logger.Printf("checked %s: %d records, %d warnings", filePath, len(records), len(report.Warnings))

	return &CheckResult{
		File:    filePath,
		Records: len(records),
		Report:  report,
	}, nil
}
