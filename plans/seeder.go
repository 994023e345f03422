package plans

import (
	"context"
	"fmt"

	"github.com/saurabh/starter-templates/pkg/logger"
)

// DocumentStore writes whole documents keyed by collection and id.
type DocumentStore interface {
	SetDocument(ctx context.Context, collection, id string, doc interface{}) error
}

// Seed writes every plan with one set per document. It stops at the first
// failure; plans written before it stay written.
func Seed(ctx context.Context, store DocumentStore, plans []Plan) error {
	for _, p := range plans {
		if err := store.SetDocument(ctx, Collection, p.ID, p); err != nil {
			logger.WithError(err).WithField("plan", p.ID).Error("Failed to seed plan")
			return fmt.Errorf("failed to seed plan %s: %w", p.ID, err)
		}
		logger.WithField("plan", p.ID).Info("Plan seeded")
	}
	return nil
}
