package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'Account' is the persisted identity behind a lobby session. Guest
 * accounts have no email/password and are deleted again on logout.
 * Everything the realtime engine needs at runtime lives in the in-memory
 * Session; this row only backs login and display data.
 */
type Account struct {
	ID           string         `gorm:"primaryKey;size:36"`
	DisplayName  string         `gorm:"size:50;not null"`
	Email        string         `gorm:"size:100;index"`
	PasswordHash string         `gorm:"size:255"`
	Origin       string         `gorm:"size:10;not null;default:'email'"`
	Profile      datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	MemberSince  time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
}

// Assign a uuid before the row is inserted.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
