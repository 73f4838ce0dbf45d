package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null;size:100"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Post      Post      `json:"post,omitempty" gorm:"foreignKey:PostID"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=100"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=100"`
}

// UpdateContent replaces the content and refreshes UpdatedAt. No
// validation here; the service checks input before calling.
func (c *Comment) UpdateContent(newContent string) {
	c.Content = newContent
	c.UpdatedAt = time.Now()
}
