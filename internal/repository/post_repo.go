package repository

import (
	"Snapfeed/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	DeletePost(ctx context.Context, id string) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(post)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

// ListPosts 全量读取，created_at 相同时按 id 兜底保证稳定顺序
func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost 硬删除，返回受影响行数供上层判定 NotFound
func (s *PostRepoImpl) DeletePost(ctx context.Context, id string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}
