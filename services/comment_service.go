package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"kboard/models"

	"gorm.io/gorm"
)

const maxCommentLen = 100

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment attaches a comment to a post. Both the post and the
// author are resolved inside the transaction so a half-deleted parent
// rolls everything back.
func (s *CommentService) CreateComment(postID, userID uint, content string) (*models.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		PostID:  postID,
		UserID:  userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "post", ID: postID}
			}
			return err
		}
		var author models.User
		if err := tx.First(&author, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "user", ID: userID}
			}
			return err
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) FindCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "comment", ID: id}
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPost lists a post's comments in thread order, oldest
// first.
func (s *CommentService) GetCommentsByPost(postID uint) ([]models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "post", ID: postID}
		}
		return nil, err
	}

	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// UpdateComment replaces the content. Like post edits, comment edits
// carry no ownership check; only deletion is owner-gated.
func (s *CommentService) UpdateComment(id uint, newContent string) (*models.Comment, error) {
	if err := validateCommentContent(newContent); err != nil {
		return nil, err
	}

	comment, err := s.FindCommentByID(id)
	if err != nil {
		return nil, err
	}

	comment.UpdateContent(newContent)
	if err := s.db.Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment if, and only if, the requester wrote
// it.
func (s *CommentService) DeleteComment(id, requestingUserID uint) error {
	comment, err := s.FindCommentByID(id)
	if err != nil {
		return err
	}

	if comment.UserID != requestingUserID {
		return &AuthorizationError{Reason: "only the comment's author may delete it"}
	}

	return s.db.Delete(comment).Error
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Reason: "must not be blank"}
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return &ValidationError{Field: "content", Reason: "must be at most 100 characters"}
	}
	return nil
}
