package redis

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/pkg/consts"
	"context"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// UploadLedger 记录已到达远端存储、但尚未被帖子行确认的对象。
// 上传成功前写入，帖子提交成功后删除；残留条目由清理任务回收。
type UploadLedger struct {
	rdb *redis.Client
}

func NewUploadLedger(rdb *redis.Client) *UploadLedger {
	return &UploadLedger{rdb: rdb}
}

func (s *UploadLedger) Record(ctx context.Context, objectName string, meta dto.PendingUpload) error {
	payload, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, consts.MediaPendingKey, objectName, string(payload)).Err()
}

// Confirm 帖子提交成功后移除台账条目
func (s *UploadLedger) Confirm(ctx context.Context, objectName string) error {
	return s.rdb.HDel(ctx, consts.MediaPendingKey, objectName).Err()
}

func (s *UploadLedger) Entries(ctx context.Context) (map[string]string, error) {
	return s.rdb.HGetAll(ctx, consts.MediaPendingKey).Result()
}
