package repository

import (
	"errors"

	"miniblog/internal/model"
	"miniblog/pkg/db"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{db: db.DB}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

// FindBySlug returns (nil, nil) when no group has the slug.
func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// FindAll returns every group, for the post form's group picker.
func (r *GroupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// Delete removes a group. Posts that referenced it keep existing with a
// null group (SET NULL, not cascade).
func (r *GroupRepository) Delete(id uint) error {
	return r.db.Delete(&model.Group{}, id).Error
}
