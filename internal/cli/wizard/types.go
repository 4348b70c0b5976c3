// Package wizard asks for the generation request fields that were not
// given on the command line, using one huh form per question.
package wizard

import "errors"

// Result holds the answers. Fields filled before Run are kept and their
// questions are skipped.
type Result struct {
	GroupID     string
	ArtifactID  string
	Name        string
	Description string
	Profile     string
	Layout      string
	Enforcement string
	SampleCode  string
	JavaVersion string
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
	ID          string             // Unique identifier, also the Result field key
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Condition   func(*Result) bool // Condition for showing this question
	Validate    func(string) error // Optional input validation
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
	// ErrRequired is returned when a required input is left blank.
	ErrRequired = errors.New("a value is required")
)
