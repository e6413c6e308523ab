package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/gymprogress/internal/auth"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			next.ServeHTTP(w, r)

			fields := log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"ua":       r.Header.Get("User-Agent"),
				"duration": time.Since(begin).String(),
			}
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				fields["user_id"] = userID
			}
			log.WithFields(fields).Debug("request served")
		})
	}
}
