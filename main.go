package main

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	league "github.com/nvbf/league-live/repos/league"
	resend "github.com/nvbf/league-live/repos/resend"

	auth "github.com/nvbf/league-live/pkg/auth"
	environment "github.com/nvbf/league-live/pkg/environment"
	metrics "github.com/nvbf/league-live/pkg/metrics"

	admin "github.com/nvbf/league-live/services/admin"
	matches "github.com/nvbf/league-live/services/matches"
	standings "github.com/nvbf/league-live/services/standings"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx := context.Background()

	env, err := environment.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment")
	}

	var clientOptions []option.ClientOption
	if env.FirebaseCredentialsJSON != "" {
		clientOptions = append(clientOptions, option.WithCredentialsJSON([]byte(env.FirebaseCredentialsJSON)))
	}

	firestoreClient, err := firestore.NewClient(ctx, env.FirebaseProjectID, clientOptions...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Firestore client")
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: env.FirebaseProjectID}, clientOptions...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase app")
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase Auth")
	}

	m := metrics.New()

	leagueService := league.NewService(firestoreClient)
	resendService := resend.NewService(env.ResendKey, env.ReportSender, env.HostURL)

	matchesService := matches.NewMatchesService(leagueService, m)
	standingsService := standings.NewStandingsService(leagueService)
	adminService := admin.NewAdminService(leagueService, resendService, m)

	router := gin.Default()

	if len(env.CorsHosts) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = env.CorsHosts
		config.AllowCredentials = true
		config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
		router.Use(cors.New(config))
	}

	router.GET("/metrics", m.Handler())

	matchesRouter := router.Group("/matches/v1")
	standingsRouter := router.Group("/standings/v1")

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.AuthMiddleware(authClient), auth.RequireClaim(env.AdminClaim))

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service: matchesService,
		Router:  matchesRouter,
	})

	standings.NewHTTPHandler(standings.HTTPOptions{
		Service: standingsService,
		Router:  standingsRouter,
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service: adminService,
		Router:  adminRouter,
	})

	log.Info().Str("port", env.Port).Msg("Starting league-live")
	if err := router.Run(":" + env.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
