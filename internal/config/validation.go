package config

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/profile"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate unexpanded template or shell variables.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// @MX:ANCHOR: [AUTO] 모든 CLI 명령이 실행 전에 거치는 설정 유효성 검사 진입점입니다.
// @MX:REASON: [AUTO] 잘못된 기본값은 모든 생성 요청을 실패시키므로 시작 시점에 한 번에 보고합니다
// Validate checks the configuration for correctness and reports every
// problem at once.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateLog(&cfg.Log)...)
	errs = append(errs, validateDefaults(&cfg.Defaults)...)
	errs = append(errs, validateAliases(cfg.DependencyAliases)...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateLog checks log level and format.
func validateLog(l *LogConfig) []ValidationError {
	var errs []ValidationError
	if !slices.Contains(validLogLevels, strings.ToLower(l.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   l.Level,
			Kind:    ErrInvalidConfig,
		})
	}
	if !slices.Contains(validLogFormats, strings.ToLower(l.Format)) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
			Value:   l.Format,
			Kind:    ErrInvalidConfig,
		})
	}
	return errs
}

// validateDefaults checks that every non-empty default names a known key.
func validateDefaults(d *DefaultsConfig) []ValidationError {
	var errs []ValidationError

	check := func(field, value string, parse func(string) error, known []string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		if err := parse(value); err != nil {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(known, ", ")),
				Value:   value,
				Kind:    ErrUnknownKey,
			})
		}
	}

	check("defaults.profile", d.Profile, func(s string) error {
		if strings.Contains(s, ":") {
			return parseTriple(s)
		}
		_, err := profile.ParseType(s)
		return err
	}, domain.Keys(profile.Types))
	check("defaults.layout", d.Layout, func(s string) error {
		_, err := domain.ParseLayout(s)
		return err
	}, domain.Keys(domain.Layouts))
	check("defaults.enforcement", d.Enforcement, func(s string) error {
		_, err := domain.ParseEnforcementMode(s)
		return err
	}, domain.Keys(domain.EnforcementModes))
	check("defaults.sample_code", d.SampleCode, func(s string) error {
		_, err := domain.ParseSampleCodeLevel(s)
		return err
	}, domain.Keys(domain.SampleCodeLevels))
	check("defaults.java_version", d.JavaVersion, func(s string) error {
		_, err := domain.ParseJavaVersion(s)
		return err
	}, domain.Keys(domain.JavaVersions))

	return errs
}

func parseTriple(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, s)
	}
	_, err := domain.NewTechStack(parts[0], parts[1], parts[2])
	return err
}

// validateAliases checks alias names and their group:artifact[:version[:scope]] targets.
func validateAliases(aliases map[string]string) []ValidationError {
	var errs []ValidationError
	for _, name := range slices.Sorted(maps.Keys(aliases)) {
		target := aliases[name]
		if strings.TrimSpace(name) == "" || strings.Contains(name, ":") {
			errs = append(errs, ValidationError{
				Field:   "dependency_aliases",
				Message: "alias names must be non-empty and must not contain ':'",
				Value:   name,
				Kind:    ErrInvalidConfig,
			})
			continue
		}
		if n := len(strings.Split(target, ":")); n < 2 || n > 4 {
			errs = append(errs, ValidationError{
				Field:   "dependency_aliases." + name,
				Message: "must be group:artifact[:version[:scope]]",
				Value:   target,
				Kind:    ErrInvalidConfig,
			})
		}
	}
	return errs
}

// validateDynamicTokens checks fields the loader resolves literally for
// unexpanded dynamic tokens. Alias targets are not checked: a dependency
// version may be a build property such as ${revision}.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError

	errs = append(errs, checkStringField("defaults.group_id", cfg.Defaults.GroupID)...)
	errs = append(errs, checkStringField("catalog.dir", cfg.Catalog.Dir)...)

	return errs
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Kind:    ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
