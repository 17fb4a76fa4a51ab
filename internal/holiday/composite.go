package holiday

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CompositeSource implements Source with a fallback strategy.
// Primary: HTTPSource (remote endpoint)
// Fallback: FileSource (local file)
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Holidays returns the holiday snapshot from the primary source, falling
// back to the secondary one when the primary fails.
func (cs *CompositeSource) Holidays(ctx context.Context) (Set, error) {
	set, err := cs.primary.Holidays(ctx)
	if err == nil {
		return set, nil
	}

	cs.logger.Warn("Primary holiday source failed, falling back",
		zap.Error(err))

	set, fallbackErr := cs.fallback.Holidays(ctx)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary and fallback holiday sources failed: primary=%w, fallback=%v", err, fallbackErr)
	}

	return set, nil
}
