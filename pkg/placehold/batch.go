package placehold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xob0t/placehold/pkg/apperr"
	"github.com/xob0t/placehold/pkg/options"
	"github.com/xob0t/placehold/pkg/output"
	"go.uber.org/zap"
)

// BatchResult summarizes a batch run.
type BatchResult struct {
	SuccessCount    int
	FailedCount     int
	OutputDirectory string
}

// Failed reports whether any item failed. A batch with any failure counts
// as failed overall.
func (r BatchResult) Failed() bool {
	return r.FailedCount > 0
}

// RunBatch generates settings.Batch images into one shared directory, one
// after another. The directory is resolved and created once up front; a
// failure there aborts the run. Item failures are counted and logged and
// never stop the loop. If ctx is cancelled the remaining items are counted
// as failed.
func (s *Service) RunBatch(ctx context.Context, settings options.Settings) (BatchResult, error) {
	count := settings.Batch
	if count <= 0 {
		return BatchResult{}, apperr.NewValidationError("batch count must be positive", nil)
	}

	dir, err := s.resolver.BatchDir(settings.Output, settings.Dimensions)
	if err != nil {
		return BatchResult{}, apperr.NewDirectoryError(settings.Output, err)
	}
	if err := output.EnsureDir(dir); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{OutputDirectory: dir}
	s.reporter.BatchStarted(count, settings.Dimensions, dir, settings.Format)
	s.logger.Info("Batch started",
		zap.Int("count", count),
		zap.String("dimensions", settings.Dimensions.String()),
		zap.String("dir", dir))

	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			skipped := count - i + 1
			result.FailedCount += skipped
			s.logger.Warn("Batch cancelled", zap.Int("skipped", skipped), zap.Error(err))
			break
		}

		s.reporter.ItemStarted(i, count, fmt.Sprintf("Generating image %d/%d", i, count))

		path := filepath.Join(dir, output.ItemName(i, settings.Format))
		if err := s.generateItem(ctx, settings, path); err != nil {
			result.FailedCount++
			s.logger.Error("Batch item failed",
				zap.Int("item", i),
				zap.String("path", path),
				zap.Error(err))
			s.reporter.ItemFailed(i, err)
			continue
		}
		result.SuccessCount++
	}

	s.logger.Info("Batch finished",
		zap.Int("succeeded", result.SuccessCount),
		zap.Int("failed", result.FailedCount))
	s.reporter.BatchFinished(result)

	return result, nil
}

func (s *Service) generateItem(ctx context.Context, settings options.Settings, path string) error {
	pipeline, err := s.Pipeline(ctx, settings)
	if err != nil {
		return err
	}
	if err := pipeline.ToFile(path); err != nil {
		return apperr.NewPersistenceError(path, err)
	}
	return nil
}
