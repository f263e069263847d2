// Package testutil provides shared test helpers.
package testutil

import "sync"

// CaptureWriter is a thread-safe io.Writer that records everything
// written to it.
type CaptureWriter struct {
	mu   sync.Mutex
	data []byte
}

func (w *CaptureWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *CaptureWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.data)
}
