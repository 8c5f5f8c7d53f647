package httpx

import "net/http"

// healthHandler reports liveness. It intentionally checks nothing else; the
// orchestrator uses it to decide whether the process is up.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
