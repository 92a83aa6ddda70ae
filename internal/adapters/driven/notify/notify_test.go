package notify

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterNotifier_ReportError(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.ReportError("Unable to save list", errors.New("disk full"))

	assert.Equal(t, "Error: Unable to save list:\n\ndisk full\n", buf.String())
}

func TestWriterNotifier_NilError(t *testing.T) {
	var buf bytes.Buffer
	NewWriterNotifier(&buf).ReportError("Something happened", nil)

	assert.Equal(t, "Error: Something happened\n", buf.String())
}

func TestDialogModel_View(t *testing.T) {
	m := newDialogModel("Unable to load list", errors.New("malformed session file list: EOF"))

	view := m.View()

	assert.Contains(t, view, "Unable to load list")
	assert.Contains(t, view, "malformed session file list: EOF")
	assert.Contains(t, view, "dismiss")
}

func TestDialogModel_DismissKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"Enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"Escape", tea.KeyMsg{Type: tea.KeyEsc}},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"Ctrl+C", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDialogModel("title", nil)

			updated, cmd := m.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.True(t, updated.(dialogModel).dismissed)
			assert.Empty(t, updated.View())
		})
	}
}

func TestDialogModel_OtherKeysIgnored(t *testing.T) {
	m := newDialogModel("title", nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.False(t, updated.(dialogModel).dismissed)
}

func TestDialogModel_WindowSize(t *testing.T) {
	m := newDialogModel("title", nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 36, updated.(dialogModel).width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, defaultDialogWidth, updated.(dialogModel).width)
}

func TestNew_NonTerminalFallsBackToWriter(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	n := New(f, f, false)

	_, ok := n.(*WriterNotifier)
	assert.True(t, ok)
}

func TestNew_PlainForcesWriter(t *testing.T) {
	n := New(os.Stdin, os.Stdout, true)

	_, ok := n.(*WriterNotifier)
	assert.True(t, ok)
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEmpty(t, theme.Error)
	assert.NotEmpty(t, theme.Foreground)
	assert.NotEmpty(t, theme.Muted)
	assert.NotEmpty(t, theme.Border)
}
