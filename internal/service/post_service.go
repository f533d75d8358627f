package service

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/model"
	"Snapfeed/internal/repository"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userID, caption string, reader io.ReadCloser, fileName, contentType string) (*dto.PostDTO, error)
	ListFeed(ctx context.Context) ([]*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID string) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	mediaSvc MediaService
	store    ObjectStore
	ledger   UploadLedger

	// enforceOwner 控制删除是否校验归属。基础流程不校验，
	// 任何已登录用户都可删除任意帖子，这是一个已知的授权缺口。
	enforceOwner bool
}

func NewPostService(postRepo repository.PostRepo, mediaSvc MediaService, store ObjectStore, ledger UploadLedger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		mediaSvc: mediaSvc,
		store:    store,
		ledger:   ledger,
	}
}

// CreatePost 先上传媒体，成功后才写入帖子行。
// 上传成功但提交失败时远端对象不在本路径回滚，由台账清理任务回收。
func (s *postServiceImpl) CreatePost(ctx context.Context, userID, caption string, reader io.ReadCloser, fileName, contentType string) (*dto.PostDTO, error) {
	media, err := s.mediaSvc.Upload(ctx, reader, fileName, contentType)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:       uuid.NewString(),
		UserID:   userID,
		Caption:  caption,
		URL:      media.URL,
		FileType: media.Kind,
		FileName: media.Name,
		Width:    media.Width,
		Height:   media.Height,
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "post commit failed after upload, remote object left to sweep",
			"objectName", media.Name, "err", err)
		return nil, fmt.Errorf("%w: %v", UnExpectedError, err)
	}

	if err = s.ledger.Confirm(ctx, media.Name); err != nil {
		log.WarnContext(ctx, "failed to confirm pending upload", "objectName", media.Name, "err", err)
	}

	return s.toPostDTO(post), nil
}

// ListFeed 全量返回帖子，按创建时间倒序
func (s *postServiceImpl) ListFeed(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", UnExpectedError, err)
	}

	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		out[i] = s.toPostDTO(post)
	}
	return out, nil
}

// DeletePost 删除帖子。postID 非法或行不存在都按 ErrPostNotFound 处理
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID string) error {
	if _, err := uuid.Parse(postID); err != nil {
		return ErrPostNotFound
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	if post == nil {
		return ErrPostNotFound
	}

	if s.enforceOwner && post.UserID != userID {
		return UnauthorizedError
	}

	rows, err := s.postRepo.DeletePost(ctx, postID)
	if err != nil {
		return fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	go func(objectName string) {
		if err := s.store.Remove(context.Background(), objectName); err != nil {
			log.Warn("failed to remove remote object for deleted post", "objectName", objectName, "err", err)
		}
	}(post.FileName)

	return nil
}

// toPostDTO 将 Model 转换为返回给前端的 DTO
func (s *postServiceImpl) toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	out.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	return out
}
