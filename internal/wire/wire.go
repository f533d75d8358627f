package wire

import (
	"Snapfeed/internal/api"
	"Snapfeed/internal/api/config"
	"Snapfeed/internal/api/handler"
	"Snapfeed/internal/job"
	"Snapfeed/internal/pkg/cron"
	"Snapfeed/internal/pkg/minio"
	redisx "Snapfeed/internal/pkg/redis"
	"Snapfeed/internal/repository"
	"Snapfeed/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, rdb *redis.Client, store *minio.Store, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)

	tokenStore := redisx.NewTokenStore(rdb)
	ledger := redisx.NewUploadLedger(rdb)

	mediaService := service.NewMediaService(store, ledger, cfg.Upload.TempDir)
	postService := service.NewPostService(postRepo, mediaService, store, ledger)
	userService := service.NewUserService(userRepo, tokenStore)

	handlers := &api.HandlersGroup{
		UserHandler: handler.NewUserHandler(userService),
		PostHandler: handler.NewPostHandler(postService),
	}

	router := api.SetupRouter(handlers, tokenStore)

	sweepJob := job.NewOrphanSweepJob(ledger, store)
	cronMgr := cron.NewCronManager(sweepJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
