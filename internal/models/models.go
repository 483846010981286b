package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"passwordHash" db:"password_hash"`
	RefreshToken           string    `json:"refreshToken" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type CreateUserRequest struct {
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
}

// Post отдаётся в ленты вместе с данными автора и группы,
// поэтому поля author_username/group_* заполняются JOIN-ом.
type Post struct {
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	GroupID        *int64    `json:"groupId" db:"group_id"`
	GroupTitle     *string   `json:"groupTitle" db:"group_title"`
	GroupSlug      *string   `json:"groupSlug" db:"group_slug"`
	Text           string    `json:"text" db:"text"`
	ImageURL       *string   `json:"imageUrl" db:"image_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type Group struct {
	GroupID     int64  `json:"groupId" db:"group_id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

type Comment struct {
	CommentID      int64     `json:"commentId" db:"comment_id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	Text           string    `json:"text" db:"text"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type Follow struct {
	FollowID int64  `json:"followId" db:"follow_id"`
	UserID   string `json:"userId" db:"user_id"`
	AuthorID string `json:"authorId" db:"author_id"`
}
