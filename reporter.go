package twincount

import "log/slog"

// Reporter receives the result of every Run.
type Reporter interface {
	Report(result RunResult) error
}

// LogReporter writes one info record per run.
type LogReporter struct {
	Logger *slog.Logger
}

func (l LogReporter) Report(result RunResult) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("increment run finished",
		"run", result.ID,
		"strategy", result.Strategy,
		"granularity", result.Granularity,
		"items", result.NumberOfItems,
		"sum", result.Sum,
		"duration", result.Duration,
	)
	return nil
}

// MultiReporter fans a result out to several reporters and returns the
// first error.
type MultiReporter []Reporter

func (m MultiReporter) Report(result RunResult) error {
	var first error
	for _, r := range m {
		if err := r.Report(result); err != nil && first == nil {
			first = err
		}
	}
	return first
}
