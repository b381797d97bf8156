// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logging provides the logger
// used to report the progress of a command.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a new logger that writes to w.
// If verbose is false,
// only warnings and errors are reported.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Progress reports the elapsed time of a step.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// Start starts the timer of a new step.
func Start(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done reports the end of the step,
// with the elapsed time,
// and any additional key-value pairs.
func (p *Progress) Done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
