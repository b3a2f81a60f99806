// Package wizard provides the interactive form used by seima init to
// collect site configuration values.
package wizard

import "errors"

// Result holds the user's selections from the init wizard. All values
// are strings as entered; the caller converts and validates them against
// the configuration schema.
type Result struct {
	AssetsDir   string // Assets folder name under the site root
	AssetExt    string // Asset file extension, with leading dot
	Port        string // Development server port (numeric string)
	OpenBrowser string // "true" or "false"
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Validate    func(string) error // Optional extra validation for inputs
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
