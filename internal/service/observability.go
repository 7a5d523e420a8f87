package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PassEvent captures lightweight telemetry for one scheduling pass.
type PassEvent struct {
	ProjectCount int
	Duration     time.Duration
	Success      bool
	Err          error
	StartedAt    time.Time
}

// PassObserver receives scheduling-pass events.
type PassObserver interface {
	ObservePass(ctx context.Context, event PassEvent)
}

// NoopPassObserver ignores all events.
type NoopPassObserver struct{}

func (NoopPassObserver) ObservePass(context.Context, PassEvent) {}

type logPassObserver struct {
	logger *slog.Logger
}

// NewLogPassObserver writes scheduling-pass events to the provided writer.
func NewLogPassObserver(w io.Writer) PassObserver {
	if w == nil {
		return NoopPassObserver{}
	}
	return &logPassObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logPassObserver) ObservePass(ctx context.Context, event PassEvent) {
	attrs := []any{
		"projects", event.ProjectCount,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "schedule_pass", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "schedule_pass", attrs...)
}

func passObserverOrNoop(observers []PassObserver) PassObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopPassObserver{}
}
