package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Run executes the wizard and returns the result.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}
	theme := newSeimaWizardTheme()

	for i := range questions {
		q := &questions[i]

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// RunWithDefaults runs the wizard seeded with the given defaults.
func RunWithDefaults(d Defaults) (*Result, error) {
	return Run(DefaultQuestions(d))
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *Result) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeInput:
		field = buildInputField(q, result)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, result *Result) *huh.Select[string] {
	var selected string

	// Set default value as initial selection.
	if q.Default != "" {
		selected = q.Default
	}

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	// Wire up value storage after each change.
	qID := q.ID
	sel.Validate(func(val string) error {
		saveAnswer(qID, val, result)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *Result) *huh.Input {
	var value string
	if q.Default != "" {
		value = q.Default
	}

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	// Validation and value storage.
	qID := q.ID
	required := q.Required
	defVal := q.Default
	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("a value is required")
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(qID, v, result)
		return nil
	})

	return inp
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case "assets_dir":
		result.AssetsDir = value
	case "asset_ext":
		result.AssetExt = value
	case "port":
		result.Port = value
	case "open_browser":
		result.OpenBrowser = value
	}
}

// newSeimaWizardTheme creates a huh.Theme with Seima branding.
func newSeimaWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Map brand colors to huh theme.
	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	secondary := lipgloss.AdaptiveColor{Light: "#E39B82", Dark: "#F0B8A4"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
