package middleware

import (
	"net/http"
	"runtime/debug"

	"hospital-admin-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

// Handle converts a panic into the generic 500 body; the stack only goes to the log
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.log.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rec,
					"stack":  string(debug.Stack()),
				}).Error("Recovered from panic")
				response.InternalServerError(w, r)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
