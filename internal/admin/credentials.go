package admin

import (
	"github.com/insuredesk/insure-backend/internal/db"
)

// CredentialStore looks up the stored admin credential. Handlers depend on
// this interface so login can be tested without a database.
type CredentialStore interface {
	FindByUsername(username string) (Credential, error)
}

type gormCredentials struct{}

func NewCredentialStore() CredentialStore {
	return gormCredentials{}
}

func (gormCredentials) FindByUsername(username string) (Credential, error) {
	var cred Credential
	err := db.DB.First(&cred, "username = ?", username).Error
	return cred, err
}
