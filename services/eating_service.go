package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/utils"
)

type EatingService struct {
	db *gorm.DB
}

func NewEatingService(db *gorm.DB) *EatingService {
	return &EatingService{db: db}
}

type MealPatch struct {
	Duration *string `json:"duration"`
	FoodType *string `json:"food_type"`
	SideFed  *string `json:"side_fed"`
	Notes    *string `json:"notes"`
}

func (p MealPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Duration != nil {
		changes["duration"] = *p.Duration
	}
	if p.FoodType != nil {
		changes["food_type"] = *p.FoodType
	}
	if p.SideFed != nil {
		changes["side_fed"] = *p.SideFed
	}
	if p.Notes != nil {
		changes["notes"] = *p.Notes
	}
	return changes
}

func (s *EatingService) ListByChild(childID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Where("child_id = ?", childID).Find(&meals).Error
	return meals, err
}

// GetForUser resolves the meal's owner through the child relation; meals of
// other users' children read as absent.
func (s *EatingService) GetForUser(id, userID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Joins("JOIN children ON children.id = eating.child_id").
		Where("eating.id = ? AND children.user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (s *EatingService) Create(meal *models.Meal) error {
	if meal.Date.IsZero() {
		meal.Date = time.Now()
	}
	return s.db.Create(meal).Error
}

func (s *EatingService) Update(id uint, changes map[string]interface{}) (*models.Meal, error) {
	if err := s.db.Model(&models.Meal{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *EatingService) Delete(id uint) error {
	return s.db.Delete(&models.Meal{}, id).Error
}

func (s *EatingService) Serialize(meal models.Meal) models.Meal {
	meal.Notes = utils.Sanitize(meal.Notes)
	meal.SideFed = utils.Sanitize(meal.SideFed)
	return meal
}
