package genprop

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Reporter writes per-property progress to a diagnostic stream: a single
// dot per passing property, a multi-line block on failure. Writes are
// serialized; reporting never affects control flow.
type Reporter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// SetOutput redirects the reporter's stream.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// Report writes a progress marker for a passing outcome, or a failure
// block naming the property and its cause.
func (r *Reporter) Report(name string, outcome Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if outcome.Successful() {
		fmt.Fprint(r.out, ".")
		return
	}
	fmt.Fprintf(r.out, "\nFailed test: %s\n%s\n", name, outcome.Cause())
}

var defaultReporter = NewReporter(os.Stderr)

// Report writes to the default reporter on os.Stderr.
func Report(name string, outcome Outcome) {
	defaultReporter.Report(name, outcome)
}

// SetReportOutput redirects the default reporter's stream.
func SetReportOutput(w io.Writer) {
	defaultReporter.SetOutput(w)
}
