package providers

import (
	"net/http"
	"strings"
	"time"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// routeFamilies are the page/action path prefixes served by the inner mux.
var routeFamilies = []string{"/sections/", "/export/", "/fragments/", "/actions/"}

// endpointLabel collapses request paths into their route family so arbitrary
// 404 traffic cannot inflate the endpoint label cardinality.
func endpointLabel(path string) string {
	if path == "/" {
		return "/"
	}
	for _, fam := range routeFamilies {
		if strings.HasPrefix(path, fam) {
			return fam
		}
	}
	return "other"
}

func MetricsMiddleware(metrics MetricsProviderInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		endpoint := endpointLabel(r.URL.Path)
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, duration)
	})
}
