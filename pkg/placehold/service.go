// Package placehold orchestrates single and batch placeholder generation.
package placehold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xob0t/placehold/pkg/apperr"
	"github.com/xob0t/placehold/pkg/generator"
	"github.com/xob0t/placehold/pkg/options"
	"github.com/xob0t/placehold/pkg/output"
	"go.uber.org/zap"
)

// Service runs generations. Settings passed in must come from options.Build.
type Service struct {
	renderer generator.Renderer
	resolver *output.Resolver
	reporter Reporter
	logger   *zap.Logger
}

// NewService wires a renderer, a path resolver and a reporter. A nil reporter
// discards progress events.
func NewService(renderer generator.Renderer, resolver *output.Resolver, reporter Reporter, logger *zap.Logger) *Service {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Service{
		renderer: renderer,
		resolver: resolver,
		reporter: reporter,
		logger:   logger,
	}
}

// Pipeline builds and renders the image for s without writing it.
func (s *Service) Pipeline(ctx context.Context, settings options.Settings) (generator.Pipeline, error) {
	req := BuildRequest(settings)

	pipeline, err := s.renderer.Render(ctx, req)
	if err != nil {
		return nil, apperr.NewRenderError(fmt.Sprintf("failed to render %s placeholder", settings.Dimensions), err)
	}
	return pipeline, nil
}

// Generate renders one image, resolves its path, creates the directory and
// writes the file. It returns the absolute path written.
func (s *Service) Generate(ctx context.Context, settings options.Settings) (string, error) {
	s.reporter.Processing(settings.Dimensions)

	pipeline, err := s.Pipeline(ctx, settings)
	if err != nil {
		return "", err
	}

	path, err := s.resolver.Resolve(settings.Output, settings.Format, settings.Dimensions)
	if err != nil {
		return "", apperr.NewPersistenceError(settings.Output, err)
	}

	if err := output.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}

	if err := pipeline.ToFile(path); err != nil {
		return "", apperr.NewPersistenceError(path, err)
	}

	s.logger.Info("Placeholder written",
		zap.String("path", path),
		zap.String("dimensions", settings.Dimensions.String()),
		zap.Float64("aspect_ratio", settings.Dimensions.AspectRatio()),
		zap.String("format", string(settings.Format)))
	s.reporter.Generated(path, settings.Dimensions, settings.Format)

	return path, nil
}
