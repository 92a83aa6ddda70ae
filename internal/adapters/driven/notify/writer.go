package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
)

// Ensure WriterNotifier implements the interface.
var _ driven.Notifier = (*WriterNotifier)(nil)

// WriterNotifier writes each report to an io.Writer.
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterNotifier creates a notifier that writes to out.
func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

// ReportError writes message followed by the error detail.
func (n *WriterNotifier) ReportError(message string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprint(n.out, formatReport(message, err))
}

func formatReport(message string, err error) string {
	if err == nil {
		return fmt.Sprintf("Error: %s\n", message)
	}
	return fmt.Sprintf("Error: %s:\n\n%v\n", message, err)
}
