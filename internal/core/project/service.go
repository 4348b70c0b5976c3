package project

import (
	"context"
	"io"
	"log/slog"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/pipeline"
	"github.com/modu-ai/moai-starter/internal/profile"
	"github.com/modu-ai/moai-starter/internal/resource"
	"github.com/modu-ai/moai-starter/internal/writer"
)

// Plan is the in-memory outcome of a request: everything up to, but not
// including, touching the filesystem.
type Plan struct {
	RequestID string
	Blueprint *domain.Blueprint
	Profile   profile.Type
	Artifacts []domain.ArtifactKey
	Resources []resource.Resource
}

// Result summarizes a completed generation.
type Result struct {
	RequestID string
	Profile   profile.Type
	Root      string
	Archive   string // Empty when archiving was not requested.
	Files     []string
	Created   bool
}

// Service runs generation requests. It holds no per-request state, so one
// Service may serve concurrent requests for different targets.
type Service struct {
	factory  *Factory
	resolver *profile.Resolver
	executor *pipeline.Executor
	fs       billy.Filesystem
	logger   *slog.Logger
	progress writer.ProgressFunc
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithProgress reports write progress to fn.
func WithProgress(fn writer.ProgressFunc) ServiceOption {
	return func(s *Service) {
		s.progress = fn
	}
}

// NewService creates a Service writing to fs. A nil logger discards output.
func NewService(factory *Factory, resolver *profile.Resolver, fs billy.Filesystem, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Service{
		factory:  factory,
		resolver: resolver,
		executor: pipeline.NewExecutor(logger),
		fs:       fs,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan validates req, resolves its profile and runs the pipeline in memory.
func (s *Service) Plan(ctx context.Context, req Request) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	log := s.logger.With("request", id)

	bp, err := s.factory.Build(req)
	if err != nil {
		return nil, s.fail(log, "build blueprint", err)
	}

	typ, port, err := s.resolver.Resolve(bp.Stack())
	if err != nil {
		return nil, s.fail(log, "resolve profile", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	generators := port.Generators()
	log.Info("generating project",
		"artifact", bp.Identity().ArtifactID(),
		"profile", typ,
		"generators", len(generators),
	)

	resources, err := s.executor.Run(bp, generators)
	if err != nil {
		return nil, s.fail(log, "run pipeline", err)
	}

	active := pipeline.Plan(bp, generators)
	keys := make([]domain.ArtifactKey, len(active))
	for i, g := range active {
		keys[i] = g.Key()
	}
	return &Plan{
		RequestID: id,
		Blueprint: bp,
		Profile:   typ,
		Artifacts: keys,
		Resources: resources,
	}, nil
}

// @MX:ANCHOR: [AUTO] 생성 요청의 전체 흐름(검증, 프로필 해석, 파이프라인, 쓰기, 압축)을 조율합니다.
// @MX:REASON: [AUTO] CLI generate 명령과 통합 테스트가 모두 이 진입점을 사용합니다
// Generate plans req, writes the resources below the target directory and
// optionally archives the tree next to it. Nothing is written unless the
// whole pipeline succeeded.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	plan, err := s.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	log := s.logger.With("request", plan.RequestID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	artifactID := plan.Blueprint.Identity().ArtifactID()
	root := path.Clean(orDefault(req.TargetDir, artifactID))

	created, err := writer.PrepareRoot(s.fs, root, req.Force)
	if err != nil {
		return nil, s.fail(log, "prepare root", err)
	}

	w := writer.NewWriter(s.fs, log)
	if s.progress != nil {
		w.OnProgress(s.progress)
	}
	if err := w.Write(root, plan.Resources, created); err != nil {
		return nil, s.fail(log, "write resources", err)
	}

	result := &Result{
		RequestID: plan.RequestID,
		Profile:   plan.Profile,
		Root:      root,
		Files:     resource.Paths(plan.Resources),
		Created:   created,
	}

	if req.Archive {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dest, err := writer.NewArchiver(s.fs, log).Archive(root, path.Dir(root), artifactID)
		if err != nil {
			return nil, s.fail(log, "archive", err)
		}
		result.Archive = dest
	}

	log.Info("project generated", "root", root, "resources", len(plan.Resources), "archive", result.Archive)
	return result, nil
}

// fail logs err at a level matching its kind and returns it unchanged.
func (s *Service) fail(log *slog.Logger, step string, err error) error {
	if apperr.KindOf(err) == apperr.KindUnexpected {
		log.Error("unexpected failure", "step", step, "error", err)
	} else {
		log.Debug("request rejected", "step", step, "code", apperr.CodeOf(err), "error", err)
	}
	return err
}
