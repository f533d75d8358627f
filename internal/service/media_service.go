package service

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/pkg/consts"
	"Snapfeed/internal/pkg/util"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ObjectStore 远端对象存储客户端
type ObjectStore interface {
	UploadFromFile(ctx context.Context, objectName, filePath, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// UploadLedger 待确认上传台账
type UploadLedger interface {
	Record(ctx context.Context, objectName string, meta dto.PendingUpload) error
	Confirm(ctx context.Context, objectName string) error
}

type MediaService interface {
	Upload(ctx context.Context, reader io.ReadCloser, fileName, contentType string) (*dto.MediaObject, error)
}

type mediaServiceImpl struct {
	store   ObjectStore
	ledger  UploadLedger
	tempDir string
}

func NewMediaService(store ObjectStore, ledger UploadLedger, tempDir string) MediaService {
	return &mediaServiceImpl{
		store:   store,
		ledger:  ledger,
		tempDir: tempDir,
	}
}

// Upload 将上传流暂存到本地文件后推送远端存储。
// 暂存文件在所有退出路径上删除，入参 reader 在所有退出路径上关闭；
// 失败一律包装为 ErrUploadFailed 并携带原因，不做重试。
func (s *mediaServiceImpl) Upload(ctx context.Context, reader io.ReadCloser, fileName, contentType string) (*dto.MediaObject, error) {
	defer func() { _ = reader.Close() }()

	stagedPath, cleanup, err := util.StageFile(reader, fileName, s.tempDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer cleanup()

	kind := consts.FileTypeImage
	if strings.HasPrefix(contentType, consts.MimePrefixVideo) {
		kind = consts.FileTypeVideo
	}

	var width, height int
	if kind == consts.FileTypeImage {
		if img, probeErr := imaging.Open(stagedPath); probeErr == nil {
			bounds := img.Bounds()
			width, height = bounds.Dx(), bounds.Dy()
		} else {
			log.WarnContext(ctx, "failed to probe image dimensions", "file", fileName, "err", probeErr)
		}
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + path.Ext(fileName)

	// 先记台账再上传：提交失败或中途放弃时，清理任务据此回收远端对象
	meta := dto.PendingUpload{MimeType: contentType, CreatedAt: time.Now().Unix()}
	if err = s.ledger.Record(ctx, objectName, meta); err != nil {
		log.WarnContext(ctx, "failed to record pending upload", "objectName", objectName, "err", err)
	}

	storedName, err := s.store.UploadFromFile(ctx, objectName, stagedPath, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	log.InfoContext(ctx, "media uploaded", "objectName", storedName, "kind", kind)

	return &dto.MediaObject{
		URL:    s.store.PublicURL(storedName),
		Name:   storedName,
		Kind:   kind,
		Width:  width,
		Height: height,
	}, nil
}
