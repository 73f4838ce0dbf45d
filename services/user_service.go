package services

import (
	"errors"
	"strings"

	"kboard/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user after checking the username is free. The
// uniqueness check runs up front so duplicates surface as a validation
// error instead of a raw constraint violation from the store.
func (s *UserService) Register(username, password, nickname string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be blank"}
	}
	if strings.TrimSpace(password) == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be blank"}
	}
	if strings.TrimSpace(nickname) == "" {
		return nil, &ValidationError{Field: "nickname", Reason: "must not be blank"}
	}

	user := &models.User{
		Username: username,
		Password: password,
		Nickname: nickname,
	}
	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("username = ?", username).First(&existing).Error
		if err == nil {
			return &ValidationError{Field: "username", Reason: "already taken"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate resolves a username and checks the password against the
// stored bcrypt hash. Both failure cases report the same reason so the
// response does not leak which usernames exist.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AuthorizationError{Reason: "invalid credentials"}
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, &AuthorizationError{Reason: "invalid credentials"}
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Find(&users).Error
	return users, err
}

func (s *UserService) UpdateNickname(id uint, nickname string) (*models.User, error) {
	if strings.TrimSpace(nickname) == "" {
		return nil, &ValidationError{Field: "nickname", Reason: "must not be blank"}
	}

	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Nickname = nickname
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and everything hanging off them: comments
// on the user's posts, the user's own comments elsewhere, then the
// posts, then the user, all in one transaction.
func (s *UserService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "user", ID: id}
			}
			return err
		}

		ownPosts := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("post_id IN (?)", ownPosts).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
