package store

import "lokanta-backend/internal/models"

func (s *Store) CreateBranch(branch *models.Branch) error {
	return s.db.Create(branch).Error
}

func (s *Store) ListBranches() ([]models.Branch, error) {
	var branches []models.Branch
	if err := s.db.Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}
