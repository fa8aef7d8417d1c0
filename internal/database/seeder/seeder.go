package seeder

import (
	"context"

	"skill-swap/internal/recordstore"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store recordstore.Store) error
}
