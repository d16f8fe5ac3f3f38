package store

import (
	"lokanta-backend/internal/models"

	"gorm.io/gorm"
)

// CreateReview persists the review and folds its rating into the menu
// item's running average. The aggregate is recomputed in a single UPDATE
// with the arithmetic pushed into the database, so concurrent reviews for
// the same menu item cannot lose each other's contribution.
func (s *Store) CreateReview(review *models.Review) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.MenuItem{}).
			Where("id = ?", review.MenuItemID).
			Updates(map[string]interface{}{
				"review":     gorm.Expr("(review * user_count + ?) / (user_count + 1)", review.Rating),
				"user_count": gorm.Expr("user_count + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(review).Error
	})
}

func (s *Store) ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListReviewsByMenuItem returns the menu item's reviews with the submitting
// user attached.
func (s *Store) ListReviewsByMenuItem(menuItemID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Preload("User").Where("menu_item_id = ?", menuItemID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
