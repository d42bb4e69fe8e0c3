package intake

import (
	"github.com/insuredesk/insure-backend/internal/db"
)

// ApplicationStore persists and lists submissions. Handlers depend on this
// interface so the store can be swapped for a fake in tests.
type ApplicationStore interface {
	// Insert stores one row and fills in the assigned ID and CreatedAt.
	Insert(app *Application) error
	// ListNewestFirst returns every application, newest first.
	ListNewestFirst() ([]Application, error)
}

type gormStore struct{}

// NewStore returns the database-backed ApplicationStore.
func NewStore() ApplicationStore {
	return gormStore{}
}

func (gormStore) Insert(app *Application) error {
	return db.DB.Create(app).Error
}

func (gormStore) ListNewestFirst() ([]Application, error) {
	var apps []Application
	// The id tiebreak keeps the order strict when two rows share a timestamp.
	err := db.DB.Order("created_at DESC, id DESC").Find(&apps).Error
	return apps, err
}
