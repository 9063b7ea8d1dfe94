// Package orm is a thin chainable wrapper over the shared GORM handle.
// Repositories build queries through it so they never touch database.DB
// directly.
package orm

import (
	"github.com/shashiranjanraj/backoffice/pkg/database"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Distinct(args ...interface{}) *Query {
	return &Query{db: q.db.Distinct(args...)}
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads one row into dest; gorm.ErrRecordNotFound when none match.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Pluck loads a single column into dest.
func (q *Query) Pluck(column string, dest interface{}) error {
	return q.db.Pluck(column, dest).Error
}

// Create inserts v, filling its primary key and timestamps.
func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

// Save persists all fields of v, updating the updated-at timestamp.
func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Delete removes v by primary key.
func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}
