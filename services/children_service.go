package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/utils"
)

type ChildrenService struct {
	db *gorm.DB
}

func NewChildrenService(db *gorm.DB) *ChildrenService {
	return &ChildrenService{db: db}
}

// ChildPatch distinguishes "field present" from "field truthy": a field set
// to its zero value still counts toward the changeset.
type ChildPatch struct {
	FirstName *string `json:"first_name"`
	Age       *int    `json:"age"`
	Weight    *string `json:"weight"`
	Image     *string `json:"image"`
}

func (p ChildPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.FirstName != nil {
		changes["first_name"] = *p.FirstName
	}
	if p.Age != nil {
		changes["age"] = *p.Age
	}
	if p.Weight != nil {
		changes["weight"] = *p.Weight
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	return changes
}

func (s *ChildrenService) ListByUser(userID uint) ([]models.Child, error) {
	var children []models.Child
	err := s.db.Where("user_id = ?", userID).Find(&children).Error
	return children, err
}

// GetForUser returns the child only when it exists and belongs to userID;
// nil otherwise. Other users' children are indistinguishable from absent ones.
func (s *ChildrenService) GetForUser(id, userID uint) (*models.Child, error) {
	var child models.Child
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (s *ChildrenService) Create(child *models.Child) error {
	return s.db.Create(child).Error
}

func (s *ChildrenService) Update(id uint, changes map[string]interface{}) (*models.Child, error) {
	if err := s.db.Model(&models.Child{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	var child models.Child
	if err := s.db.First(&child, id).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (s *ChildrenService) Delete(id uint) error {
	return s.db.Delete(&models.Child{}, id).Error
}

func (s *ChildrenService) Serialize(child models.Child) models.Child {
	child.FirstName = utils.Sanitize(child.FirstName)
	child.Image = utils.Sanitize(child.Image)
	return child
}
