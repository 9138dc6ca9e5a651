package audit

import (
	"encoding/json"
	"io"

	clog "github.com/charmbracelet/log"

	"github.com/BruksfildServices01/client-registry/internal/logging"
)

// Logger writes audit events as structured log lines.
type Logger struct {
	out *clog.Logger
}

// New writes to w, or to the application logger when w is nil.
func New(w io.Writer) *Logger {
	if w == nil {
		return &Logger{}
	}
	return &Logger{out: clog.NewWithOptions(w, clog.Options{ReportTimestamp: true, Formatter: clog.JSONFormatter})}
}

func (l *Logger) logger() *clog.Logger {
	if l.out != nil {
		return l.out
	}
	return logging.L
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	keyvals := []interface{}{"audit", true, "entity", entity}
	if entityID != nil {
		keyvals = append(keyvals, "entity_id", *entityID)
	}

	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		keyvals = append(keyvals, "metadata", string(b))
	}

	l.logger().Info(action, keyvals...)
	return nil
}
