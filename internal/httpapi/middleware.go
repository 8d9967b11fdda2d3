package httpapi

import (
	"bytes"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusRecorder captures the response status and size for request logging.
// It also keeps a bounded copy of the body so failed responses can be logged
// without ever buffering an unbounded payload.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	logBody      bytes.Buffer
	maxLogBytes  int
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(payload []byte) (int, error) {
	written, err := r.ResponseWriter.Write(payload)
	r.bytesWritten += written

	if remaining := r.maxLogBytes - r.logBody.Len(); remaining > 0 {
		if len(payload) > remaining {
			r.logBody.Write(payload[:remaining])
			r.truncated = true
		} else {
			r.logBody.Write(payload)
		}
	} else if len(payload) > 0 {
		r.truncated = true
	}

	return written, err
}

// requestLogger tags every request with an id and logs method, path, status,
// size, and duration. Server errors additionally log the (bounded) body.
func requestLogger(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    1024,
		}

		requestID := uuid.NewString()
		started := time.Now()
		next.ServeHTTP(recorder, r)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.statusCode),
			zap.Int("bytes", recorder.bytesWritten),
			zap.Duration("duration", time.Since(started)),
		}
		if recorder.statusCode >= http.StatusInternalServerError {
			fields = append(fields,
				zap.String("body", recorder.logBody.String()),
				zap.Bool("body_truncated", recorder.truncated),
			)
			log.Error("request failed", fields...)
			return
		}
		log.Info("request", fields...)
	})
}
