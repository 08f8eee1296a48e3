package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"primdb/internal/sql"
)

// ExecFunc is the dispatch step signature, satisfied by Session.Execute.
type ExecFunc func(sql.Statement) (*Result, error)

// Timed wraps a dispatch step with duration logging. Instrumentation
// stays outside the business logic; wrapping must not change command
// semantics.
func Timed(log *logrus.Logger, next ExecFunc) ExecFunc {
	return func(stmt sql.Statement) (*Result, error) {
		start := time.Now()
		res, err := next(stmt)
		log.WithFields(logrus.Fields{
			"elapsed": time.Since(start).String(),
			"ok":      err == nil,
		}).Debug("command dispatched")
		return res, err
	}
}
