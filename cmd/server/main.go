package main

import (
	"context"
	"log"
	"os"
	"time"

	"shop-backend/internal/auth"
	"shop-backend/internal/controllers/http"
	mmysql "shop-backend/internal/infra/mysql"
	"shop-backend/internal/infra/rabbitmq"
	mysqlrepo "shop-backend/internal/repository/mysql"
	"shop-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	userRepo := mysqlrepo.NewUserRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "shop.events")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := auth.NewTokenIssuer([]byte(secret), 2*time.Hour)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, publisher)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	productService.SetRedisClient(redisClient)
	orderService.SetRedisClient(redisClient)

	ctx := context.Background()
	go func() {
		time.Sleep(5 * time.Second)
		products, err := productService.List(ctx)
		if err != nil {
			log.Printf("cache warmup: listing products: %v", err)
			return
		}
		ids := make([]uint64, 0, len(products))
		for i := range products {
			ids = append(ids, products[i].ID)
		}
		if err := productService.WarmupCache(ctx, ids); err != nil {
			log.Printf("cache warmup failed: %v", err)
		} else {
			log.Printf("cache warmed up with %d products", len(ids))
		}
	}()

	handler := http.NewHandler(authService, userService, productService, cartService, orderService, tokens)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting shop backend on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
