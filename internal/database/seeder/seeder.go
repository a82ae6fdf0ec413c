package seeder

import (
	"context"

	"github.com/sriraghavi22/career-catalyst-project/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
