package store

import (
	"fmt"

	"lokanta-backend/internal/models"
)

func (s *Store) CreateInventoryItem(item *models.InventoryItem) error {
	return s.db.Create(item).Error
}

func (s *Store) ListInventoryItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetInventoryItem(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *Store) UpdateInventoryItem(item *models.InventoryItem) error {
	return s.db.Save(item).Error
}

func (s *Store) DeleteInventoryItem(id uint) error {
	res := s.db.Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete inventory item %d: no row deleted", id)
	}
	return nil
}
