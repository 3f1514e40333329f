package app

import (
	"github.com/shawki99/Auth-Sys-BE/internal/auth"
	"github.com/shawki99/Auth-Sys-BE/internal/config"
	"github.com/shawki99/Auth-Sys-BE/internal/dto"
	"github.com/shawki99/Auth-Sys-BE/internal/handlers"
	"github.com/shawki99/Auth-Sys-BE/internal/ratelimit"
	"github.com/shawki99/Auth-Sys-BE/internal/repo"
	"github.com/shawki99/Auth-Sys-BE/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	dto.RegisterValidations()

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	authSvc := service.NewAuthService(userRepo, issuer, cfg.Auth.BcryptCost)
	authHandler := handlers.NewAuthHandler(authSvc)

	limiter := ratelimit.New(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window.Duration())

	grp := r.Group("/auth", limiter.Middleware())
	grp.POST("/signup", authHandler.Signup)
	grp.POST("/signin", authHandler.Signin)
	grp.GET("/welcome", auth.RequireToken(issuer), authHandler.Welcome)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Auth API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
