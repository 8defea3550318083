package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/utils"
)

type SleepingService struct {
	db *gorm.DB
}

func NewSleepingService(db *gorm.DB) *SleepingService {
	return &SleepingService{db: db}
}

type SleepPatch struct {
	Duration      *string `json:"duration"`
	SleepType     *string `json:"sleep_type"`
	SleepCategory *string `json:"sleep_category"`
	Notes         *string `json:"notes"`
}

func (p SleepPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Duration != nil {
		changes["duration"] = *p.Duration
	}
	if p.SleepType != nil {
		changes["sleep_type"] = *p.SleepType
	}
	if p.SleepCategory != nil {
		changes["sleep_category"] = *p.SleepCategory
	}
	if p.Notes != nil {
		changes["notes"] = *p.Notes
	}
	return changes
}

func (s *SleepingService) ListByChild(childID uint) ([]models.Sleep, error) {
	var sleeps []models.Sleep
	err := s.db.Where("child_id = ?", childID).Find(&sleeps).Error
	return sleeps, err
}

// GetForUser resolves the sleep's owner through the child relation; records
// of other users' children read as absent.
func (s *SleepingService) GetForUser(id, userID uint) (*models.Sleep, error) {
	var sleep models.Sleep
	err := s.db.
		Joins("JOIN children ON children.id = sleeping.child_id").
		Where("sleeping.id = ? AND children.user_id = ?", id, userID).
		First(&sleep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sleep, nil
}

func (s *SleepingService) Create(sleep *models.Sleep) error {
	if sleep.Date.IsZero() {
		sleep.Date = time.Now()
	}
	return s.db.Create(sleep).Error
}

func (s *SleepingService) Update(id uint, changes map[string]interface{}) (*models.Sleep, error) {
	if err := s.db.Model(&models.Sleep{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	var sleep models.Sleep
	if err := s.db.First(&sleep, id).Error; err != nil {
		return nil, err
	}
	return &sleep, nil
}

func (s *SleepingService) Delete(id uint) error {
	return s.db.Delete(&models.Sleep{}, id).Error
}

func (s *SleepingService) Serialize(sleep models.Sleep) models.Sleep {
	sleep.Notes = utils.Sanitize(sleep.Notes)
	return sleep
}
