// Package container wires the application together. Initialization
// order is config, infrastructure, repositories, services, handlers.
package container

import (
	"context"
	"fmt"

	"bookvault-backend/internal/config"
	bookhandler "bookvault-backend/internal/domains/book/handler"
	bookrepo "bookvault-backend/internal/domains/book/repository"
	bookservice "bookvault-backend/internal/domains/book/service"
	carthandler "bookvault-backend/internal/domains/cart/handler"
	cartrepo "bookvault-backend/internal/domains/cart/repository"
	cartservice "bookvault-backend/internal/domains/cart/service"
	"bookvault-backend/internal/domains/inventory"
	orderhandler "bookvault-backend/internal/domains/order/handler"
	orderrepo "bookvault-backend/internal/domains/order/repository"
	orderservice "bookvault-backend/internal/domains/order/service"
	userhandler "bookvault-backend/internal/domains/user/handler"
	userrepo "bookvault-backend/internal/domains/user/repository"
	userservice "bookvault-backend/internal/domains/user/service"
	wishlisthandler "bookvault-backend/internal/domains/wishlist/handler"
	wishlistrepo "bookvault-backend/internal/domains/wishlist/repository"
	wishlistservice "bookvault-backend/internal/domains/wishlist/service"
	"bookvault-backend/internal/infrastructure/cache"
	"bookvault-backend/internal/infrastructure/database"
	"bookvault-backend/internal/infrastructure/storage"
	"bookvault-backend/pkg/jwt"
	"bookvault-backend/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB      *database.PostgresDB
	Cache   *cache.RedisCache
	Storage *storage.MinioStorage
	JWT     *jwt.Manager

	BookHandler     *bookhandler.BookHandler
	CartHandler     *carthandler.CartHandler
	WishlistHandler *wishlisthandler.WishlistHandler
	OrderHandler    *orderhandler.OrderHandler
	UserHandler     *userhandler.UserHandler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	minioStorage, err := storage.NewMinioStorage(ctx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.JWT = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	books := bookrepo.NewBookRepository(db.Pool, c.Cache)
	carts := cartrepo.NewCartRepository(db.Pool)
	wishlists := wishlistrepo.NewWishlistRepository(db.Pool)
	orders := orderrepo.NewOrderRepository(db.Pool)
	users := userrepo.NewUserRepository(db.Pool)
	ledger := inventory.NewLedger(db.Pool, c.Cache)

	bookSvc := bookservice.NewBookService(books)
	cartSvc := cartservice.NewCartService(carts, ledger)
	wishlistSvc := wishlistservice.NewWishlistService(wishlists, books)
	orderSvc := orderservice.NewOrderService(orders, carts, ledger)
	userSvc := userservice.NewUserService(users, c.JWT)

	c.BookHandler = bookhandler.NewBookHandler(bookSvc, minioStorage)
	c.CartHandler = carthandler.NewCartHandler(cartSvc)
	c.WishlistHandler = wishlisthandler.NewWishlistHandler(wishlistSvc)
	c.OrderHandler = orderhandler.NewOrderHandler(orderSvc)
	c.UserHandler = userhandler.NewUserHandler(userSvc)

	return c, nil
}

// Close tears down infrastructure connections.
func (c *Container) Close() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
