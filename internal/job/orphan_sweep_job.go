package job

import (
	"Snapfeed/internal/api/dto"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// Ledger 待确认上传台账的读取与删除端
type Ledger interface {
	Entries(ctx context.Context) (map[string]string, error)
	Confirm(ctx context.Context, objectName string) error
}

// Remover 远端对象删除端
type Remover interface {
	Remove(ctx context.Context, objectName string) error
}

// OrphanSweepJob 回收已上传到远端、但帖子行从未确认的对象。
// 创建路径本身不做补偿，泄漏对象由本任务异步清理。
type OrphanSweepJob struct {
	ledger     Ledger
	store      Remover
	expiration time.Duration
}

func NewOrphanSweepJob(ledger Ledger, store Remover) *OrphanSweepJob {
	return &OrphanSweepJob{
		ledger:     ledger,
		store:      store,
		expiration: 24 * time.Hour,
	}
}

func (s *OrphanSweepJob) Run() {
	ctx := context.Background()
	log.Info("start orphan sweep job")

	entries, err := s.ledger.Entries(ctx)
	if err != nil {
		log.Error("failed to read pending upload ledger", "err", err)
		return
	}

	now := time.Now().Unix()
	count := 0

	for objectName, val := range entries {
		var meta dto.PendingUpload
		if err := json.Unmarshal([]byte(val), &meta); err != nil {
			log.Warn("invalid pending upload format", "objectName", objectName)
			continue
		}

		if now-meta.CreatedAt <= int64(s.expiration.Seconds()) {
			continue
		}

		if err = s.store.Remove(ctx, objectName); err != nil {
			log.Error("failed to delete orphaned object", "objectName", objectName, "err", err)
			continue
		}

		if err = s.ledger.Confirm(ctx, objectName); err != nil {
			log.Error("failed to remove ledger entry", "objectName", objectName, "err", err)
		}

		count++
		log.Info("swept orphaned remote object", "objectName", objectName, "mime", meta.MimeType)
	}

	if count > 0 {
		log.Info("orphan sweep job finished", "cleaned_count", count)
	}
}
