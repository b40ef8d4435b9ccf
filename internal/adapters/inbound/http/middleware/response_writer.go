package middleware

import (
	"bufio"
	"net"
	"net/http"
)

type ResponseRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten uint64
	wroteHeader  bool
	flusher      http.Flusher
	hijacker     http.Hijacker
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	rec := &ResponseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}

	if f, ok := w.(http.Flusher); ok {
		rec.flusher = f
	}

	if h, ok := w.(http.Hijacker); ok {
		rec.hijacker = h
	}

	return rec
}

func (w *ResponseRecorder) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.statusCode = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += uint64(n)

	return n, err
}

func (w *ResponseRecorder) StatusCode() int {
	return w.statusCode
}

func (w *ResponseRecorder) BytesWritten() uint64 {
	return w.bytesWritten
}

func (w *ResponseRecorder) Flush() {
	if w.flusher != nil {
		w.flusher.Flush()
	}
}

func (w *ResponseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if w.hijacker != nil {
		return w.hijacker.Hijack()
	}

	return nil, nil, http.ErrNotSupported
}

func (w *ResponseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
