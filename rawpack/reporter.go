package rawpack

import (
	"log/slog"

	"github.com/dustin/go-humanize"
)

// EventKind identifies a pipeline event.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventCompress
	EventMove
	EventDone
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventCompress:
		return "compress"
	case EventMove:
		return "move"
	case EventDone:
		return "done"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is delivered to a Reporter. Which fields are set depends on Kind:
// RunStarted carries Count and Dest (the originals directory), Compress and
// Move carry Source and Dest, Done and Failed carry the Outcome.
type Event struct {
	Kind    EventKind
	Source  string
	Dest    string
	Count   int
	Outcome Outcome
}

// Reporter observes the pipeline. Workers call Report concurrently.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

// Discard drops every event.
var Discard Reporter = ReporterFunc(func(Event) {})

type logReporter struct {
	log *slog.Logger
}

// NewLogReporter returns a Reporter writing one structured line per event.
func NewLogReporter(log *slog.Logger) Reporter {
	return logReporter{log: log}
}

func (r logReporter) Report(e Event) {
	switch e.Kind {
	case EventRunStarted:
		r.log.Info("starting run", slog.Int("candidates", e.Count), slog.String("originals", e.Dest))
	case EventCompress:
		r.log.Info("compressing file", slog.String("source", e.Source), slog.String("archive", e.Dest))
	case EventMove:
		r.log.Info("moving original", slog.String("source", e.Source), slog.String("target", e.Dest))
	case EventDone:
		o := e.Outcome
		r.log.Debug("file archived",
			slog.String("source", o.Candidate),
			slog.String("in", humanize.IBytes(uint64(o.InputBytes))),
			slog.String("out", humanize.IBytes(uint64(o.ArchiveBytes))),
		)
	case EventFailed:
		o := e.Outcome
		r.log.Error("file failed",
			slog.String("source", o.Candidate),
			slog.String("step", o.Err.Kind.String()),
			slog.String("path", o.Err.Path),
			slog.Any("error", o.Err.Err),
		)
	}
}
