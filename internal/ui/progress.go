package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	// SetTitle updates the text shown next to the spinner.
	SetTitle(title string)

	// Stop halts the spinner. It is safe to call more than once.
	Stop()
}

// Progress creates progress indicators appropriate for the current terminal.
type Progress interface {
	// Spinner starts an indeterminate spinner with the given title.
	Spinner(title string) Spinner
}

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless manager.
// Output goes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return NewProgressWithWriter(theme, hm, os.Stdout)
}

// NewProgressWithWriter creates a Progress that writes headless output to w.
func NewProgressWithWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Spinner creates an indeterminate spinner.
// In headless mode it prints the title as a log line.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title)
}

// --- interactiveSpinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, opts ...tea.ProgramOption) *interactiveSpinner {
	m := newSpinnerModel(theme, title)
	p := tea.NewProgram(m, opts...)

	s := &interactiveSpinner{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	title   string
	writer  io.Writer
	stopped bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{
		title:  title,
		writer: w,
	}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *headlessSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {
	s.stopped = true
}
