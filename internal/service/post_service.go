package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

// ErrNotAuthor - попытка правки чужого поста. Наружу не ошибка:
// хендлер просто уводит на страницу поста без изменений.
var ErrNotAuthor = errors.New("пост принадлежит другому автору")

type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type PostDetail struct {
	Post            models.Post      `json:"post"`
	Comments        []models.Comment `json:"comments"`
	AuthorPostCount int              `json:"authorPostCount"`
}

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest, image *ImageUpload) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest, image *ImageUpload) (*models.Post, error)
	GetPostDetail(ctx context.Context, postID int64) (*PostDetail, error)
	AddComment(ctx context.Context, postID int64, authorID, text string) (*models.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest, image *ImageUpload) (*models.Post, error) {
	if req.GroupID != nil {
		if _, err := p.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
		Text:     req.Text,
	}

	if image != nil {
		objectName, imageURL, err := p.storage.UploadImage(ctx, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
		post.ImageURL = &imageURL

		if err := p.postRepo.Create(ctx, post); err != nil {
			p.storage.DeleteImage(ctx, objectName)
			return nil, err
		}
		return post, nil
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost меняет текст, группу и картинку поста. Автор и дата создания
// не трогаются; для чужого поста возвращается ErrNotAuthor без мутаций.
func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest, image *ImageUpload) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != req.AuthorID {
		return post, ErrNotAuthor
	}

	if req.GroupID != nil {
		if _, err := p.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post.Text = req.Text
	post.GroupID = req.GroupID

	if image != nil {
		_, imageURL, err := p.storage.UploadImage(ctx, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
		post.ImageURL = &imageURL
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPostDetail(ctx context.Context, postID int64) (*PostDetail, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := p.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	count, err := p.postRepo.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:            *post,
		Comments:        comments,
		AuthorPostCount: count,
	}, nil
}

func (p *postService) AddComment(ctx context.Context, postID int64, authorID, text string) (*models.Comment, error) {
	// комментарий только к существующему посту
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := p.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
