package wire

import (
	"bemusicshare/internal/api"
	"bemusicshare/internal/api/config"
	"bemusicshare/internal/api/handler"
	"bemusicshare/internal/job"
	"bemusicshare/internal/pkg/cron"
	"bemusicshare/internal/pkg/es"
	"bemusicshare/internal/pkg/kafka"
	pkgmongo "bemusicshare/internal/pkg/mongo"
	"bemusicshare/internal/repository"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	songRepo := repository.NewSongRepo(db)
	postRepo := repository.NewPostRepo(db)
	voteRepo := repository.NewVoteRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	savedSongRepo := repository.NewSavedSongRepo(db)
	notifRepo := pkgmongo.NewNotificationRepo(mongoDB)
	postESRepo := es.NewPostRepo(es.Client)

	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	userService := service.NewUserService(userRepo, userFollowService)
	songService := service.NewSongService(songRepo)
	postService := service.NewPostService(postRepo, songRepo, voteRepo, postESRepo)
	voteService := service.NewVoteService(voteRepo, postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	savedSongService := service.NewSavedSongService(savedSongRepo, songRepo)
	notificationService := service.NewNotificationService(notifRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		UserFollowHandler:   handler.NewUserFollowHandler(userFollowService, userService),
		PostHandler:         handler.NewPostHandler(postService, voteService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		SongHandler:         handler.NewSongHandler(songService),
		SavedSongHandler:    handler.NewSavedSongHandler(savedSongService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo, notifRepo, postESRepo)
	if err != nil {
		return nil, err
	}

	postCounterJob := job.NewPostCounterJob(postRepo, voteRepo)
	followCounterJob := job.NewFollowCounterJob(userFollowRepo)
	trendingJob := job.NewTrendingJob(postRepo)
	cronMgr := cron.NewCronManager(postCounterJob, followCounterJob, trendingJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
