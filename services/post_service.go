package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"kboard/models"
	"kboard/query"

	"gorm.io/gorm"
)

const maxTitleLen = 100

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// CreatePost validates input, checks the author exists and persists the
// post. The existence check and insert share one transaction so the
// author cannot vanish between them.
func (s *PostService) CreatePost(title, content string, userID uint) (*models.Post, error) {
	if err := validatePostInput(title, content); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var author models.User
		if err := tx.First(&author, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "user", ID: userID}
			}
			return err
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) FindPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "post", ID: id}
		}
		return nil, err
	}
	return &post, nil
}

// FindPostsByUser lists a user's posts, newest first.
func (s *PostService) FindPostsByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("user_id = ?", userID).Order("id DESC").Find(&posts).Error
	return posts, err
}

// UpdatePost replaces title and content in place. There is no ownership
// check on post edits; only comment deletion is owner-gated.
func (s *PostService) UpdatePost(id uint, title, content string) (*models.Post, error) {
	if err := validatePostInput(title, content); err != nil {
		return nil, err
	}

	post, err := s.FindPostByID(id)
	if err != nil {
		return nil, err
	}

	post.Update(title, content)
	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and its comments as one transaction:
// children first, then the parent. A concurrent delete loses cleanly
// with a not-found error.
func (s *PostService) DeletePost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "post", ID: id}
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// ListPosts returns one page of the full listing. Surrogate keys grow
// monotonically, so id DESC is a stable newest-first order.
func (s *PostService) ListPosts(req query.PageRequest, descending bool) (query.Page[models.Post], error) {
	req = req.Normalize()
	order := "id ASC"
	if descending {
		order = "id DESC"
	}
	return s.pageOf(s.db.Model(&models.Post{}), req, order)
}

// SearchPosts answers one of the three search modes. The mode string is
// parsed into a filter at this boundary; the dispatch below is over the
// closed filter set, so there is no runtime default branch to fall into.
func (s *PostService) SearchPosts(mode, keyword string, req query.PageRequest) (query.Page[models.Post], error) {
	req = req.Normalize()

	filter, advisory, err := query.ParsePostFilter(mode, keyword)
	if err != nil {
		if errors.Is(err, query.ErrUnsupportedMode) {
			return query.Page[models.Post]{}, &ValidationError{Field: "type", Reason: err.Error()}
		}
		return query.Page[models.Post]{}, err
	}
	if filter == nil {
		return query.EmptyPage[models.Post](req, advisory), nil
	}

	scope := s.db.Model(&models.Post{})
	switch f := filter.(type) {
	case query.TitleContent:
		pattern := "%" + f.Keyword + "%"
		scope = scope.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	case query.ByUser:
		scope = scope.Where("user_id = ?", f.UserID)
	case query.ByPost:
		scope = scope.Where("id = ?", f.PostID)
	}

	return s.pageOf(scope, req, "id DESC")
}

func (s *PostService) pageOf(scope *gorm.DB, req query.PageRequest, order string) (query.Page[models.Post], error) {
	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return query.Page[models.Post]{}, err
	}

	var posts []models.Post
	if err := scope.Order(order).Offset(req.Offset()).Limit(req.Size).Find(&posts).Error; err != nil {
		return query.Page[models.Post]{}, err
	}

	return query.NewPage(posts, total, req), nil
}

func validatePostInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be blank"}
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return &ValidationError{Field: "title", Reason: "must be at most 100 characters"}
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Reason: "must not be blank"}
	}
	return nil
}
