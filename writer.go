package replyaux

import "net/http"

// decorateHandler is the serverside wrap shared by both decorator types
func decorateHandler(d Decorator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
		hw := &headerWriter{
			ResponseWriter: rw,
			d:              d,
		}

		next.ServeHTTP(hw, request)

		// the handler may return without writing anything, in which case
		// net/http commits the headers afterward
		hw.commit()
	})
}

// headerWriter defers a decorator's transformation until the response
// headers are committed.  Running at commit time, rather than before the
// inner handler as a preset, lets the entry-or-insert policy observe
// every header the handler set.  Nested decorators commit innermost
// first, so the outermost replacement wins and the innermost default
// wins.
type headerWriter struct {
	http.ResponseWriter

	d         Decorator
	committed bool
}

// commit applies the transformation exactly once, no matter how many
// times the handler writes
func (hw *headerWriter) commit() {
	if !hw.committed {
		hw.committed = true
		hw.d.ApplyTo(hw.ResponseWriter.Header())
	}
}

func (hw *headerWriter) WriteHeader(statusCode int) {
	hw.commit()
	hw.ResponseWriter.WriteHeader(statusCode)
}

func (hw *headerWriter) Write(p []byte) (int, error) {
	// an initial Write triggers an implicit WriteHeader downstream
	hw.commit()
	return hw.ResponseWriter.Write(p)
}

// Flush commits the headers before flushing, since nothing can change
// them afterward
func (hw *headerWriter) Flush() {
	hw.commit()
	if f, ok := hw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the decorated writer to http.ResponseController
func (hw *headerWriter) Unwrap() http.ResponseWriter {
	return hw.ResponseWriter
}
