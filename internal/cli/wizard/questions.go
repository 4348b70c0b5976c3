package wizard

import (
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/policy"
	"github.com/modu-ai/moai-starter/internal/profile"
)

// Defaults pre-selects answers. Empty values leave the first option
// selected.
type Defaults struct {
	GroupID     string
	Profile     string
	Layout      string
	Enforcement string
	SampleCode  string
	JavaVersion string
}

func unanswered(id string) func(*Result) bool {
	return func(r *Result) bool { return answer(id, r) == "" }
}

func enforce(p policy.Policy) func(string) error {
	return func(v string) error {
		_, err := p.Enforce(v)
		return err
	}
}

func keyedOptions[T domain.Keyed](variants []T, desc map[string]string) []Option {
	opts := make([]Option, len(variants))
	for i, v := range variants {
		opts[i] = Option{Label: v.Key(), Value: v.Key(), Desc: desc[v.Key()]}
	}
	return opts
}

// DefaultQuestions returns the questions needed to build a blueprint, in
// the order they are asked:
// 1. Group id
// 2. Artifact id
// 3. Project name
// 4. Description
// 5. Profile
// 6. Layout
// 7. Architecture enforcement
// 8. Sample code level
// 9. Java version
func DefaultQuestions(d Defaults) []Question {
	return []Question{
		{
			ID:          "group_id",
			Type:        QuestionTypeInput,
			Title:       "Group id",
			Description: "Reverse-domain group of the project, e.g. com.acme.",
			Default:     d.GroupID,
			Required:    true,
			Condition:   unanswered("group_id"),
			Validate:    enforce(policy.GroupID),
		},
		{
			ID:          "artifact_id",
			Type:        QuestionTypeInput,
			Title:       "Artifact id",
			Description: "Lowercase project id; also the output directory name.",
			Default:     "demo",
			Required:    true,
			Condition:   unanswered("artifact_id"),
			Validate:    enforce(policy.ArtifactID),
		},
		{
			ID:          "name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Display name. Press Enter to use the artifact id.",
			Condition:   unanswered("name"),
			Validate:    optional(enforce(policy.ProjectName)),
		},
		{
			ID:          "description",
			Type:        QuestionTypeInput,
			Title:       "Description",
			Description: "One line for the build file and README. Press Enter to skip.",
			Condition:   unanswered("description"),
			Validate:    optional(enforce(policy.ProjectDescription)),
		},
		{
			ID:          "profile",
			Type:        QuestionTypeSelect,
			Title:       "Select the build profile",
			Description: "Framework, build tool and language of the project.",
			Options:     keyedOptions(profile.Types, nil),
			Default:     d.Profile,
			Required:    true,
			Condition:   unanswered("profile"),
		},
		{
			ID:          "layout",
			Type:        QuestionTypeSelect,
			Title:       "Select the source layout",
			Description: "How the base package is organized.",
			Options: keyedOptions(domain.Layouts, map[string]string{
				"standard":  "Flat package per feature",
				"hexagonal": "adapter, application, bootstrap and domain packages",
			}),
			Default:   d.Layout,
			Required:  true,
			Condition: unanswered("layout"),
		},
		{
			ID:          "enforcement",
			Type:        QuestionTypeSelect,
			Title:       "Select architecture enforcement",
			Description: "Adds ArchUnit rules to the test suite.",
			Options: keyedOptions(domain.EnforcementModes, map[string]string{
				"none":   "No architecture tests",
				"basic":  "Cycle and logging rules",
				"strict": "Basic rules plus layer checks",
			}),
			Default:   d.Enforcement,
			Required:  true,
			Condition: unanswered("enforcement"),
		},
		{
			ID:          "sample_code",
			Type:        QuestionTypeSelect,
			Title:       "Select the sample code level",
			Description: "Example greeting feature included in the project.",
			Options: keyedOptions(domain.SampleCodeLevels, map[string]string{
				"none":    "Entry point only",
				"minimal": "One endpoint",
				"full":    "Endpoint, service and tests",
			}),
			Default:   d.SampleCode,
			Required:  true,
			Condition: unanswered("sample_code"),
		},
		{
			ID:          "java_version",
			Type:        QuestionTypeSelect,
			Title:       "Select the Java version",
			Description: "The newest framework release supporting it is chosen.",
			Options:     keyedOptions(domain.JavaVersions, nil),
			Default:     d.JavaVersion,
			Required:    true,
			Condition:   unanswered("java_version"),
		},
	}
}

// optional skips validation of blank input.
func optional(validate func(string) error) func(string) error {
	return func(v string) error {
		if v == "" {
			return nil
		}
		return validate(v)
	}
}

// FilteredQuestions returns questions filtered by their conditions.
// Questions whose conditions return false are excluded.
func FilteredQuestions(questions []Question, result *Result) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(result) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
