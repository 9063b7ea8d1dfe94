// Package seeders holds the demo data loaders. Each seeder registers itself
// from init() and runs through the seed CLI command.
package seeders

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"gorm.io/gorm"
)

// Seeder populates one table. Seeders must be idempotent: running the seed
// command twice leaves the database unchanged.
type Seeder func(db *gorm.DB) error

type entry struct {
	name string
	run  Seeder
}

var (
	mu       sync.Mutex
	registry []entry
)

// Register adds a seeder under a stable name. Call it from init().
func Register(name string, run Seeder) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, entry{name: name, run: run})
}

// RunAll executes every registered seeder in registration order and stops at
// the first failure.
func RunAll(db *gorm.DB) error {
	mu.Lock()
	seeders := append([]entry(nil), registry...)
	mu.Unlock()

	for _, s := range seeders {
		if err := s.run(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.name, err)
		}
		logger.Info("seeded", "seeder", s.name)
	}
	return nil
}
