package service

import (
	"mime/multipart"

	"miniblog/internal/model"
	"miniblog/internal/pagination"
	"miniblog/internal/repository"
	"miniblog/pkg/config"
)

// PostService implements the listing, feed and post mutation use cases.
type PostService struct {
	postRepo    *repository.PostRepository
	groupRepo   *repository.GroupRepository
	userRepo    *repository.UserRepository
	commentRepo *repository.CommentRepository
	followRepo  *repository.FollowRepository
	images      *ImageService
}

func NewPostService(
	postRepo *repository.PostRepository,
	groupRepo *repository.GroupRepository,
	userRepo *repository.UserRepository,
	commentRepo *repository.CommentRepository,
	followRepo *repository.FollowRepository,
	images *ImageService,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		images:      images,
	}
}

// PostForm binds create/edit submissions. The group and image are
// optional; text is the only required field. The post title is not
// form-editable.
type PostForm struct {
	Text    string `json:"text" form:"text" binding:"required"`
	GroupID *uint  `json:"group_id" form:"group_id"`
}

type CommentForm struct {
	Text string `json:"text" form:"text" binding:"required"`
}

// ProfileListing carries one author's page of posts plus the
// display-only relationship state for the requesting user.
type ProfileListing struct {
	Author         *model.User
	Posts          []model.Post
	Page           pagination.Page
	PostsCount     int64
	FollowersCount int64
	// Following is always false for anonymous requesters.
	Following bool
}

// PostDetail is one post with its full comment list and the author's
// total post count.
type PostDetail struct {
	Post            *model.Post
	Comments        []model.Comment
	AuthorPostCount int64
}

func pageSize() int {
	return config.GlobalConfig.Pagination.PageSize
}

// ListIndex returns all posts newest-first, one page at a time.
func (s *PostService) ListIndex(pageParam string) ([]model.Post, pagination.Page, error) {
	total, err := s.postRepo.CountAll()
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page := pagination.FromParam(pageParam, total, pageSize())
	posts, err := s.postRepo.FindPage(page.Size, page.Offset())
	return posts, page, err
}

// ListGroup returns the page of posts belonging to the group with the
// given slug. A missing slug is ErrGroupNotFound.
func (s *PostService) ListGroup(slug, pageParam string) (*model.Group, []model.Post, pagination.Page, error) {
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	if group == nil {
		return nil, nil, pagination.Page{}, ErrGroupNotFound
	}

	total, err := s.postRepo.CountByGroupID(group.ID)
	if err != nil {
		return nil, nil, pagination.Page{}, err
	}
	page := pagination.FromParam(pageParam, total, pageSize())
	posts, err := s.postRepo.FindByGroupID(group.ID, page.Size, page.Offset())
	return group, posts, page, err
}

// ListProfile returns one author's posts. viewerID 0 means anonymous.
func (s *PostService) ListProfile(username, pageParam string, viewerID uint) (*ProfileListing, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	total, err := s.postRepo.CountByAuthorID(author.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.FromParam(pageParam, total, pageSize())
	posts, err := s.postRepo.FindByAuthorID(author.ID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	followersCount, err := s.followRepo.CountFollowers(author.ID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 {
		following, err = s.followRepo.Exists(viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ProfileListing{
		Author:         author,
		Posts:          posts,
		Page:           page,
		PostsCount:     total,
		FollowersCount: followersCount,
		Following:      following,
	}, nil
}

// ListFeed returns the merged posts of every author the user follows,
// ordered by creation time descending across authors.
func (s *PostService) ListFeed(userID uint, pageParam string) ([]model.Post, pagination.Page, error) {
	total, err := s.postRepo.CountFeed(userID)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page := pagination.FromParam(pageParam, total, pageSize())
	posts, err := s.postRepo.FindFeedPage(userID, page.Size, page.Offset())
	return posts, page, err
}

// Groups lists every group for the post form's picker.
func (s *PostService) Groups() ([]model.Group, error) {
	return s.groupRepo.FindAll()
}

// GetForEdit loads a post for its author's edit form. Non-authors get
// ErrNotAuthor so the handler can fail open to the detail page.
func (s *PostService) GetForEdit(requesterID, postID uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}
	return post, nil
}

func (s *PostService) GetDetail(postID uint) (*PostDetail, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.FindByPostID(post.ID)
	if err != nil {
		return nil, err
	}

	authorPostCount, err := s.postRepo.CountByAuthorID(post.AuthorID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:            post,
		Comments:        comments,
		AuthorPostCount: authorPostCount,
	}, nil
}

// Create persists a new post owned by authorID. The referenced group
// must exist; a failed image upload aborts before anything persists.
func (s *PostService) Create(authorID uint, form PostForm, image *multipart.FileHeader) (*model.Post, error) {
	if form.GroupID != nil {
		group, err := s.groupRepo.FindByID(*form.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrUnknownGroup
		}
	}

	imagePath := ""
	if image != nil {
		var err error
		imagePath, err = s.images.StoreImage(image, authorID)
		if err != nil {
			return nil, err
		}
	}

	post := &model.Post{
		Text:     form.Text,
		AuthorID: authorID,
		GroupID:  form.GroupID,
		Image:    imagePath,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Edit updates text/group/image of the requester's own post.
// A non-author requester gets ErrNotAuthor and the post stays untouched;
// author and creation timestamp are never altered either way.
func (s *PostService) Edit(requesterID, postID uint, form PostForm, image *multipart.FileHeader) (*model.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}

	if form.GroupID != nil {
		group, err := s.groupRepo.FindByID(*form.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrUnknownGroup
		}
	}

	if image != nil {
		imagePath, err := s.images.StoreImage(image, requesterID)
		if err != nil {
			return nil, err
		}
		post.Image = imagePath
	}

	post.Text = form.Text
	post.GroupID = form.GroupID

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the requester's own post together with its comments.
func (s *PostService) Delete(requesterID, postID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != requesterID {
		return ErrNotAuthor
	}
	return s.postRepo.Delete(postID)
}

// AddComment attaches a comment to an existing post.
func (s *PostService) AddComment(authorID, postID uint, form CommentForm) (*model.Comment, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		Text:     form.Text,
		PostID:   post.ID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
