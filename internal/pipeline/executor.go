// Package pipeline runs an ordered set of artifact generators against one
// blueprint and assembles their output into a single deterministic
// resource sequence.
package pipeline

import (
	"io"
	"log/slog"
	"slices"

	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/resource"
)

// Generator produces the resources of one artifact category.
type Generator interface {
	// Key identifies the artifact category.
	Key() domain.ArtifactKey
	// Order is the execution priority; lower runs first.
	Order() int
	// Supports reports whether the generator applies to bp.
	Supports(bp *domain.Blueprint) bool
	// Generate returns resources in emission order.
	Generate(bp *domain.Blueprint) ([]resource.Resource, error)
}

// Executor runs generators sequentially on the calling goroutine.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an Executor. A nil logger discards output.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{logger: logger}
}

// @MX:ANCHOR: [AUTO] 파이프라인 실행의 핵심 진입점입니다. 동일한 블루프린트와 제너레이터 집합은 항상 동일한 순서의 결과를 생성합니다.
// @MX:REASON: [AUTO] 결정적 출력은 재현 가능한 스캐폴딩과 호출자의 콘텐츠 주소 캐싱에 필요합니다
// Run filters generators by Supports, orders them by Order (ties keep
// registration order) and concatenates their output. The first error
// aborts the run and is returned unchanged; nothing produced so far is
// returned with it.
func (e *Executor) Run(bp *domain.Blueprint, generators []Generator) ([]resource.Resource, error) {
	active := Plan(bp, generators)

	var out []resource.Resource
	for _, g := range active {
		resources, err := g.Generate(bp)
		if err != nil {
			e.logger.Debug("generator failed", "artifact", g.Key(), "error", err)
			return nil, err
		}
		e.logger.Debug("generator finished", "artifact", g.Key(), "resources", len(resources))
		out = append(out, resources...)
	}
	return out, nil
}

// Plan returns the generators Run would invoke, in invocation order.
func Plan(bp *domain.Blueprint, generators []Generator) []Generator {
	active := make([]Generator, 0, len(generators))
	for _, g := range generators {
		if g.Supports(bp) {
			active = append(active, g)
		}
	}
	slices.SortStableFunc(active, func(a, b Generator) int {
		return a.Order() - b.Order()
	})
	return active
}
