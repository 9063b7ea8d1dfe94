// Package migration tracks and runs registered schema migrations in batches.
// Every migration is reversible: Down exactly undoes Up, and Rollback
// reverses the most recent batch in LIFO order.
package migration

import (
	"fmt"
	"sort"
	"time"

	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"gorm.io/gorm"
)

// Migration is one reversible schema change.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// record is one row of the tracking table.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "schema_migrations" }

type registered struct {
	name string
	m    Migration
}

var registry []registered

// Register adds a migration under a timestamp-prefixed name, for example
// "20250722000000_create_products_table". Names sort chronologically; call
// Register from an init() in each migration file.
func Register(name string, m Migration) {
	registry = append(registry, registered{name: name, m: m})
}

// Names returns the registered migration names in registration order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, reg := range registry {
		out = append(out, reg.name)
	}
	return out
}

// Runner executes registered migrations against one database.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable() error {
	return r.db.AutoMigrate(&record{})
}

// applied returns the tracking rows keyed by migration name.
func (r *Runner) applied() (map[string]record, error) {
	var rows []record
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]record, len(rows))
	for _, row := range rows {
		out[row.Name] = row
	}
	return out, nil
}

// pending returns the not-yet-applied migrations in name order.
func (r *Runner) pending() ([]registered, error) {
	applied, err := r.applied()
	if err != nil {
		return nil, err
	}

	var out []registered
	for _, reg := range registry {
		if _, ok := applied[reg.name]; !ok {
			out = append(out, reg)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// Run applies every pending migration as a single new batch.
func (r *Runner) Run() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.pending()
	if err != nil {
		return fmt.Errorf("migration: fetch pending: %w", err)
	}
	if len(pending) == 0 {
		logger.Info("migration: nothing to migrate")
		return nil
	}

	batch := r.lastBatch() + 1
	for _, reg := range pending {
		logger.Info("migration: applying", "name", reg.name, "batch", batch)

		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", reg.name, err)
		}
		if err := r.db.Create(&record{Name: reg.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", reg.name, err)
		}
	}

	logger.Info("migration: done", "applied", len(pending), "batch", batch)
	return nil
}

// Rollback reverses the most recent batch, newest migration first.
func (r *Runner) Rollback() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	batch := r.lastBatch()
	if batch == 0 {
		logger.Info("migration: nothing to roll back")
		return nil
	}

	var rows []record
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&rows).Error; err != nil {
		return err
	}

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, row := range rows {
		m, ok := byName[row.Name]
		if !ok {
			return fmt.Errorf("migration: cannot rollback %s: not registered", row.Name)
		}

		logger.Info("migration: reversing", "name", row.Name, "batch", batch)

		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", row.Name, err)
		}
		if err := r.db.Delete(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

// Status prints one line per registered migration with its applied batch.
func (r *Runner) Status() error {
	if err := r.EnsureTable(); err != nil {
		return err
	}

	applied, err := r.applied()
	if err != nil {
		return err
	}

	fmt.Printf("%-60s  %-8s  %s\n", "Migration", "Status", "Batch")
	for _, reg := range registry {
		if row, ok := applied[reg.name]; ok {
			fmt.Printf("%-60s  %-8s  %d\n", reg.name, "Ran", row.Batch)
		} else {
			fmt.Printf("%-60s  %-8s  -\n", reg.name, "Pending")
		}
	}
	return nil
}

func (r *Runner) lastBatch() int {
	var max struct{ Max int }
	r.db.Model(&record{}).Select("MAX(batch) as max").Scan(&max)
	return max.Max
}
