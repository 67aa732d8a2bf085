package app

import (
	"todoapi/internal/auth"
	"todoapi/internal/cache"
	"todoapi/internal/config"
	"todoapi/internal/handlers"
	"todoapi/internal/middleware"
	"todoapi/internal/repo"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// setupMultiUser registers the full surface: register/login plus
// bearer-protected, owner-scoped todo routes, and the swagger UI.
func setupMultiUser(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	registerCommonRoutes(r, cfg)
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	todoHandler := handlers.NewTodoHandler(newTodoService(cfg, repo.NewPGTodoRepo(db), rdb))
	protected := r.Group("", auth.RequireToken(tokens, userRepo))
	registerTodoRoutes(protected, todoHandler)
}

// setupSingleUser registers the todo routes without authentication; every
// request operates on the shared unscoped collection.
func setupSingleUser(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	registerCommonRoutes(r, cfg)
	todoHandler := handlers.NewTodoHandler(newTodoService(cfg, repo.NewPGTodoRepo(db), rdb))
	registerTodoRoutes(&r.RouterGroup, todoHandler)
}

// setupInMemory registers the todo routes against the in-process store.
func setupInMemory(r *gin.Engine, cfg config.Config) {
	registerCommonRoutes(r, cfg)
	todoHandler := handlers.NewTodoHandler(service.NewTodoService(repo.NewMemoryTodoRepo(), nil))
	registerTodoRoutes(&r.RouterGroup, todoHandler)
}

func newTodoService(cfg config.Config, todoRepo repo.TodoRepo, rdb *redis.Client) *service.TodoService {
	var todoCache *cache.TodoCache
	if rdb != nil {
		todoCache = cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	return service.NewTodoService(todoRepo, todoCache)
}

func registerCommonRoutes(r *gin.Engine, cfg config.Config) {
	r.Use(middleware.RequestID())
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
}

func registerTodoRoutes(g *gin.RouterGroup, h *handlers.TodoHandler) {
	g.GET("/todos", h.List)
	g.POST("/todos", h.Create)
	g.PUT("/todos/:id", h.Update)
	g.DELETE("/todos/:id", h.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
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
