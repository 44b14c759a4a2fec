package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	dbpkg "github.com/Lis-Kacper/BeautySaloon/internal/db"
	"github.com/Lis-Kacper/BeautySaloon/internal/logging"
	"github.com/Lis-Kacper/BeautySaloon/internal/middleware"
	"github.com/Lis-Kacper/BeautySaloon/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
