package store

import (
	"fmt"

	"lokanta-backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser persists the user and, when branchIDs is non-empty, links the
// branches in the same transaction. Every branch id must exist.
func (s *Store) CreateUser(user *models.User, branchIDs []uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if len(branchIDs) == 0 {
			return nil
		}
		var branches []models.Branch
		if err := tx.Find(&branches, branchIDs).Error; err != nil {
			return err
		}
		if len(branches) != len(branchIDs) {
			return ErrNotFound
		}
		return tx.Model(user).Association("Branches").Append(&branches)
	})
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) UpdateUser(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// DeleteUser keeps the long-standing contract that deleting a missing row is
// a store error, not a NotFound.
func (s *Store) DeleteUser(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user %d: no row deleted", id)
	}
	return nil
}

// AddBranch links the branch to the user and returns the user with all
// linked branches attached.
func (s *Store) AddBranch(userID, branchID uint) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	var branch models.Branch
	if err := s.db.First(&branch, branchID).Error; err != nil {
		return nil, notFound(err)
	}
	if err := s.db.Model(user).Association("Branches").Append(&branch); err != nil {
		return nil, err
	}
	return s.getUserWithBranches(userID)
}

// RemoveBranch unlinks the branch from the user. The branch itself is not
// checked: unlinking a branch that was never linked is a no-op.
func (s *Store) RemoveBranch(userID, branchID uint) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Association("Branches").Delete(&models.Branch{ID: branchID}); err != nil {
		return nil, err
	}
	return s.getUserWithBranches(userID)
}

func (s *Store) getUserWithBranches(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Branches").First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
