package service

import (
	"strings"

	"miniblog/internal/model"
	"miniblog/internal/repository"
	"miniblog/pkg/logger"

	"go.uber.org/zap"
)

// FollowService implements the follow/unfollow rules. Follow is an
// idempotent silent no-op on self-follows and duplicates; unfollow of a
// missing relationship is an error. The asymmetry is deliberate.
type FollowService struct {
	followRepo *repository.FollowRepository
	userRepo   *repository.UserRepository
}

func NewFollowService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates follower -> username unless the target is the follower
// itself or the relationship already exists. Both cases succeed without
// creating anything.
func (s *FollowService) Follow(followerID uint, username string) (*model.User, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	if author.ID == followerID {
		return author, nil
	}

	exists, err := s.followRepo.Exists(followerID, author.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return author, nil
	}

	follow := &model.Follow{
		FollowerID: followerID,
		AuthorID:   author.ID,
	}
	if err := s.followRepo.Create(follow); err != nil {
		// A concurrent request may have won the race; the unique index
		// rejecting the duplicate still means the follow exists.
		if isDuplicateKeyError(err) {
			logger.L.Debug("Duplicate follow lost the race",
				zap.Uint("followerID", followerID), zap.Uint("authorID", author.ID))
			return author, nil
		}
		return nil, err
	}
	return author, nil
}

// Unfollow deletes the relationship; a missing one is ErrFollowNotFound.
func (s *FollowService) Unfollow(followerID uint, username string) (*model.User, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	rows, err := s.followRepo.Delete(followerID, author.ID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrFollowNotFound
	}
	return author, nil
}

func (s *FollowService) IsFollowing(followerID, authorID uint) (bool, error) {
	return s.followRepo.Exists(followerID, authorID)
}

// MySQL reports unique-index violations as error 1062.
func isDuplicateKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
