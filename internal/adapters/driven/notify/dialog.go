package notify

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
	"github.com/cyberknet/reloadluf/internal/logger"
)

// Ensure DialogNotifier implements the interface.
var _ driven.Notifier = (*DialogNotifier)(nil)

const defaultDialogWidth = 72

// dialogKeys are the bindings that dismiss the dialog.
type dialogKeys struct {
	Dismiss key.Binding
}

func defaultDialogKeys() dialogKeys {
	return dialogKeys{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", "q", "ctrl+c"),
			key.WithHelp("enter", "dismiss"),
		),
	}
}

// dialogModel is a bubbletea model for a single error box.
type dialogModel struct {
	title     string
	detail    string
	width     int
	keys      dialogKeys
	styles    dialogStyles
	dismissed bool
}

func newDialogModel(message string, err error) dialogModel {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return dialogModel{
		title:  message,
		detail: detail,
		width:  defaultDialogWidth,
		keys:   defaultDialogKeys(),
		styles: newDialogStyles(DefaultTheme()),
	}
}

// Init implements tea.Model.
func (m dialogModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Dismiss) {
			m.dismissed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 4 && msg.Width-4 < defaultDialogWidth {
			m.width = msg.Width - 4
		} else {
			m.width = defaultDialogWidth
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m dialogModel) View() string {
	if m.dismissed {
		return ""
	}

	help := m.keys.Dismiss.Help()
	parts := []string{m.styles.Title.Render(m.title)}
	if m.detail != "" {
		parts = append(parts, "", m.styles.Detail.Render(m.detail))
	}
	parts = append(parts, "", m.styles.Hint.Render(help.Key+" "+help.Desc))

	box := m.styles.Box.Width(m.width)

	return box.Render(strings.Join(parts, "\n")) + "\n"
}

// DialogNotifier shows each report as a modal box and blocks until the
// user dismisses it. Reports are shown one at a time.
type DialogNotifier struct {
	mu       sync.Mutex
	in       io.Reader
	out      io.Writer
	fallback *WriterNotifier
}

// NewDialogNotifier creates a dialog notifier on the given terminal streams.
func NewDialogNotifier(in io.Reader, out io.Writer) *DialogNotifier {
	return &DialogNotifier{in: in, out: out, fallback: NewWriterNotifier(out)}
}

// ReportError shows the dialog. If the terminal program fails, the report
// is printed as text instead.
func (n *DialogNotifier) ReportError(message string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p := tea.NewProgram(newDialogModel(message, err), tea.WithInput(n.in), tea.WithOutput(n.out))
	if _, runErr := p.Run(); runErr != nil {
		logger.Warn("dialog failed: %v", runErr)
		n.fallback.ReportError(message, err)
	}
}

// New returns a DialogNotifier when both streams are terminals and plain
// is false, otherwise a WriterNotifier on out.
func New(in, out *os.File, plain bool) driven.Notifier {
	if !plain && term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return NewDialogNotifier(in, out)
	}
	return NewWriterNotifier(out)
}
