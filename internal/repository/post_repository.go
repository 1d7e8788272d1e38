package repository

import (
	"errors"

	"miniblog/internal/model"
	"miniblog/pkg/db"

	"gorm.io/gorm"
)

// PostRepository handles post persistence. All listings are ordered
// newest-first and preload the author (and group where displayed).
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository() *PostRepository {
	return &PostRepository{db: db.DB}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// FindByID returns (nil, nil) when the post does not exist.
func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindPage(limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (r *PostRepository) FindByGroupID(groupID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("Author").
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByGroupID(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *PostRepository) FindByAuthorID(authorID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// FindFeedPage returns the posts of every author the follower follows,
// merged newest-first.
func (r *PostRepository) FindFeedPage(followerID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("Author").Preload("Group").
		Where("author_id IN (?)",
			r.db.Model(&model.Follow{}).Select("author_id").Where("follower_id = ?", followerID)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountFeed(followerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).
		Where("author_id IN (?)",
			r.db.Model(&model.Follow{}).Select("author_id").Where("follower_id = ?", followerID)).
		Count(&count).Error
	return count, err
}

// Update writes the form-editable columns only. AuthorID, CreatedAt
// and Title are never touched by an edit.
func (r *PostRepository) Update(post *model.Post) error {
	return r.db.Model(&model.Post{ID: post.ID}).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

// Delete removes a post; its comments cascade away with it.
func (r *PostRepository) Delete(id uint) error {
	return r.db.Delete(&model.Post{}, id).Error
}
