package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ReadUserIP returns the client ip, honoring proxy headers first.
// It returns an empty string when nothing parseable is found.
func ReadUserIP(r *http.Request) string {
	candidates := []string{
		r.Header.Get("X-Real-Ip"),
		firstForwarded(r.Header.Get("X-Forwarded-For")),
		r.RemoteAddr,
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if host, _, err := net.SplitHostPort(c); err == nil {
			c = host
		}
		if ip := net.ParseIP(c); ip != nil {
			return ip.String()
		}
	}
	return ""
}

func firstForwarded(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}
