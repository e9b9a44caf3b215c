package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/NovaBeautyTech/salon-manager/internal/config"
	dbpkg "github.com/NovaBeautyTech/salon-manager/internal/db"
	"github.com/NovaBeautyTech/salon-manager/internal/routes"
)

func main() {

	// .env is optional outside local development
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	r := gin.Default()

	sweep := routes.RegisterRoutes(r, db, cfg, rdb)

	scheduler := sweep.Start()
	defer scheduler.Stop()

	logrus.WithField("addr", cfg.Addr()).Info("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
