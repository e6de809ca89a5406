package app

import (
	"context"
	"fmt"
	"log"

	"tush00nka/phonebook_messenger/internal/config"
	"tush00nka/phonebook_messenger/internal/handler"
	"tush00nka/phonebook_messenger/internal/repository"
	"tush00nka/phonebook_messenger/internal/service"

	"gorm.io/gorm"
)

// Options carries the optional collaborators of the gateway.
type Options struct {
	BcryptCost int
	Cache      repository.ProfileCache
	// Uploader stays nil when avatar storage is not configured.
	Uploader    service.ObjectUploader
	S3Bucket    string
	S3PublicURL string
}

func BuildGateway(db *gorm.DB, opts Options) *handler.Gateway {
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	userService := service.NewUserService(userRepo, opts.Cache, opts.BcryptCost)
	contactService := service.NewContactService(contactRepo)
	messageService := service.NewMessageService(messageRepo)
	avatarService := service.NewAvatarService(opts.Uploader, userRepo, opts.S3Bucket, opts.S3PublicURL)

	return handler.NewGateway(userService, contactService, messageService, avatarService)
}

// Setup connects every backing service named in cfg. The returned func
// releases them.
func Setup(ctx context.Context, cfg *config.Config) (*handler.Gateway, func(), error) {
	db, err := repository.NewDB(cfg.DatabaseURL, repository.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogLevel:        cfg.DBLogLevel,
	})
	if err != nil {
		return nil, nil, err
	}

	closers := []func() error{}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, sqlDB.Close)
	}
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}
	}

	if cfg.DBAutoMigrate {
		if err := repository.Migrate(db); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to migrate: %w", err)
		}
		log.Println("Database migrated")
	}

	opts := Options{
		BcryptCost:  cfg.BcryptCost,
		S3Bucket:    cfg.S3Bucket,
		S3PublicURL: cfg.S3PublicURL,
	}

	if cfg.CacheEnabled() {
		rdb, err := repository.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, rdb.Close)
		opts.Cache = repository.NewProfileCache(rdb, cfg.ProfileCacheTTL)
		log.Printf("Profile cache enabled: %s", cfg.RedisAddr)
	}

	if cfg.AvatarsEnabled() {
		uploader, err := service.NewS3Uploader(ctx, service.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicURL:       cfg.S3PublicURL,
		})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		opts.Uploader = uploader
	}

	return BuildGateway(db, opts), cleanup, nil
}

func Run(cfg *config.Config) {
	gateway, cleanup, err := Setup(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(serve(NewServer(gateway), cfg.ServerPort, cleanup))
}

// serve blocks until the server stops and releases the backing services
// before returning its error.
func serve(server *Server, port string, cleanup func()) error {
	defer cleanup()
	return server.Run(port)
}
