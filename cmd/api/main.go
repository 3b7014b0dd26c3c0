package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gustavoml12/GrupoUnion/internal/config"
	"github.com/gustavoml12/GrupoUnion/internal/database"
	"github.com/gustavoml12/GrupoUnion/internal/middleware"
	"github.com/gustavoml12/GrupoUnion/internal/modules/auth"
	"github.com/gustavoml12/GrupoUnion/internal/modules/collective"
	"github.com/gustavoml12/GrupoUnion/internal/modules/meeting"
	"github.com/gustavoml12/GrupoUnion/internal/modules/notification"
	"github.com/gustavoml12/GrupoUnion/internal/modules/onboarding"
	"github.com/gustavoml12/GrupoUnion/internal/modules/profile"
	"github.com/gustavoml12/GrupoUnion/internal/modules/quiz"
	"github.com/gustavoml12/GrupoUnion/internal/modules/upload"
	"github.com/gustavoml12/GrupoUnion/internal/modules/visit"
	jwtsvc "github.com/gustavoml12/GrupoUnion/internal/pkg/jwt"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	collectiveRepo := repository.NewCollectiveMeetingRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.RefreshTTL)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, tokens)
	authHandler := auth.NewHandler(authService)

	onboardingService := onboarding.NewService(userRepo, memberRepo, paymentRepo, notificationService)
	onboardingHandler := onboarding.NewHandler(onboardingService)

	meetingService := meeting.NewService(meetingRepo, memberRepo, notificationService)
	meetingHandler := meeting.NewHandler(meetingService)

	collectiveService := collective.NewService(collectiveRepo, memberRepo)
	collectiveHandler := collective.NewHandler(collectiveService)

	visitService := visit.NewService(visitRepo, memberRepo)
	visitHandler := visit.NewHandler(visitService)

	profileService := profile.NewService(memberRepo, userRepo)
	profileHandler := profile.NewHandler(profileService)

	quizService := quiz.NewService(videoRepo, quizRepo)
	quizHandler := quiz.NewHandler(quizService)

	blobStore := upload.NewLocalStore(cfg.UploadDir, "/uploads")
	uploadHandler := upload.NewHandler(blobStore, memberRepo, profileService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.Static("/uploads", cfg.UploadDir)

	hubOnly := middleware.HubOnly()
	adminOnly := middleware.AdminOnly()

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(tokens))
		{
			authHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			onboardingHandler.RegisterRoutes(protected, hubOnly, adminOnly)
			meetingHandler.RegisterRoutes(protected, hubOnly)
			collectiveHandler.RegisterRoutes(protected, hubOnly)
			visitHandler.RegisterRoutes(protected, hubOnly)
			profileHandler.RegisterRoutes(protected, hubOnly)
			quizHandler.RegisterRoutes(protected, hubOnly)
			uploadHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
