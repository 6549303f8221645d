package middlewares

import (
	"net/http"
	"time"
)

// responseTimer stamps X-Response-Time on the first header or body write,
// so the value reflects handler latency rather than write completion.
type responseTimer struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *responseTimer) stampOnce() {
	if !w.stamped {
		w.stamped = true
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
	}
}

func (w *responseTimer) WriteHeader(code int) {
	w.stampOnce()
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseTimer) Write(b []byte) (int, error) {
	w.stampOnce()
	return w.ResponseWriter.Write(b)
}

func ResponseTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt := &responseTimer{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(rt, r)
		// bodyless responses (204, HEAD) still get a reading
		rt.stampOnce()
	})
}
