package walkengine

import (
	"github.com/rs/zerolog"
)

// LogEmitter writes engine events to a zerolog logger.
type LogEmitter struct {
	log zerolog.Logger
}

// NewLogEmitter creates an emitter that logs every event it receives.
func NewLogEmitter(log zerolog.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

// Emit logs the event at a level matching its severity.
func (l *LogEmitter) Emit(event Event) {
	switch ev := event.(type) {
	case WalkStarted:
		l.log.Info().Str("root", ev.Root).Stringer("mode", ev.Mode).Msg("walk started")
	case EntrySkipped:
		l.log.Debug().Str("path", ev.Path).Err(ev.Err).Msg("entry unreadable, skipped")
	case EntryExcluded:
		l.log.Debug().Str("path", ev.Path).Bool("dir", ev.IsDir).Msg("entry excluded")
	case DuplicateFound:
		l.log.Warn().Int("index", ev.Index).Str("path", ev.Path).Msg("duplicate adjacent path")
	case WalkComplete:
		l.log.Info().
			Str("root", ev.Root).
			Int("emitted", ev.Emitted).
			Int("skipped", ev.Skipped).
			Dur("elapsed", ev.Elapsed).
			Msg("walk complete")
	case ErrorOccurred:
		l.log.Error().Str("phase", ev.Phase).Err(ev.Err).Msg("walk failed")
	default:
		l.log.Debug().Type("event", ev).Msg("unhandled event")
	}
}
