package admin

// Credential is the singleton staff login record, seeded once at startup
// and never mutated by any handler.
type Credential struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Username string `gorm:"uniqueIndex;not null" json:"-"`
	// Secret is the plaintext password by default, or a bcrypt hash when
	// the seed was configured with one. The verifier decides how to compare.
	Secret string `gorm:"not null" json:"-"`
}

func (Credential) TableName() string { return "insure.admin_credentials" }
