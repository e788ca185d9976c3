// Package accounts is the boundary to the account store. The realtime
// core only ever talks to the Store interface; the gorm implementation
// below is the single production adapter.
package accounts

import (
	models "Fabler/models/postgres"

	"gorm.io/gorm"
)

// Store is the external account collaborator.
type Store interface {
	CreateAccount(account *models.Account) error
	FindAccount(id string) (*models.Account, error)
	FindAccountByEmail(email string) (*models.Account, error)
	PersistAccount(account *models.Account) error
	DeleteAccount(id string) error
	AllAccounts() ([]*models.Account, error)
}

// GormStore persists accounts in PostgreSQL through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateAccount(account *models.Account) error {
	return s.db.Create(account).Error
}

func (s *GormStore) FindAccount(id string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *GormStore) FindAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *GormStore) PersistAccount(account *models.Account) error {
	return s.db.Save(account).Error
}

func (s *GormStore) DeleteAccount(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Account{}).Error
}

func (s *GormStore) AllAccounts() ([]*models.Account, error) {
	var accounts []*models.Account
	if err := s.db.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
