// Package progress reports periodic scan statistics through the logger.
package progress

import (
	"fmt"

	"go.trai.ch/twin/internal/core/ports"
)

var _ ports.Progress = (*Reporter)(nil)

// Reporter logs one line per progress report. It is instrumentation only;
// dropping reports can never change scan results.
type Reporter struct {
	logger ports.Logger
}

// NewReporter creates a Reporter writing through the given logger.
func NewReporter(logger ports.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// OnProgress logs cumulative file and byte counts for the phase.
func (r *Reporter) OnProgress(phase ports.ScanPhase, files, bytes int64) {
	r.logger.Info(fmt.Sprintf("%s: %d files, %d bytes", phase, files, bytes))
}
