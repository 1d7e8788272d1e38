package repository

import (
	"miniblog/internal/model"
	"miniblog/pkg/db"

	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{db: db.DB}
}

func (r *FollowRepository) Create(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

func (r *FollowRepository) Exists(followerID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the matching relationship and reports how many rows
// went away; zero means there was nothing to unfollow.
func (r *FollowRepository) Delete(followerID, authorID uint) (int64, error) {
	res := r.db.Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (r *FollowRepository) CountFollowers(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
