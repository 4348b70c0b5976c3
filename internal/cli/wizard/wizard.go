package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/moai-starter/internal/ui"
)

// Run asks every question whose condition holds for result and stores the
// answers in result.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question, result *Result, noColor bool) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	theme := newWizardTheme()
	if noColor {
		theme = huh.ThemeBase()
	}

	for i := range questions {
		q := &questions[i]

		// Pre-check condition: skip questions whose condition is not met.
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		field, commit := buildField(q)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
		saveAnswer(q.ID, commit(), result)
	}

	return nil
}

// buildField creates the huh field for q and a function returning the
// final answer once the form has run.
func buildField(q *Question) (huh.Field, func() string) {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q)
	default:
		return buildInputField(q)
	}
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question) (*huh.Select[string], func() string) {
	selected := q.Default
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

	return sel, func() string { return selected }
}

// buildInputField creates a huh.Input field for an input-type question.
// A blank answer falls back to the default.
func buildInputField(q *Question) (*huh.Input, func() string) {
	var value string
	resolve := func(val string) string {
		v := strings.TrimSpace(val)
		if v == "" {
			v = q.Default
		}
		return v
	}

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	inp = inp.Validate(func(val string) error {
		return validateInput(q, resolve(val))
	})

	return inp, func() string { return resolve(value) }
}

// validateInput applies the required check and q.Validate to v.
func validateInput(q *Question, v string) error {
	if q.Required && v == "" {
		return ErrRequired
	}
	if q.Validate != nil {
		return q.Validate(v)
	}
	return nil
}

// answer returns the stored value for a question id.
func answer(id string, r *Result) string {
	switch id {
	case "group_id":
		return r.GroupID
	case "artifact_id":
		return r.ArtifactID
	case "name":
		return r.Name
	case "description":
		return r.Description
	case "profile":
		return r.Profile
	case "layout":
		return r.Layout
	case "enforcement":
		return r.Enforcement
	case "sample_code":
		return r.SampleCode
	case "java_version":
		return r.JavaVersion
	}
	return ""
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, r *Result) {
	switch id {
	case "group_id":
		r.GroupID = value
	case "artifact_id":
		r.ArtifactID = value
	case "name":
		r.Name = value
	case "description":
		r.Description = value
	case "profile":
		r.Profile = value
	case "layout":
		r.Layout = value
	case "enforcement":
		r.Enforcement = value
	case "sample_code":
		r.SampleCode = value
	case "java_version":
		r.JavaVersion = value
	}
}

// newWizardTheme creates a huh.Theme with the moai-starter brand colors.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ui.ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ui.ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ui.ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
