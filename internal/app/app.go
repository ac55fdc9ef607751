package app

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	goredis "github.com/redis/go-redis/v9"

	natsadapter "github.com/Dmungal1308/QuickSales-sub000/internal/adapter/nats"
	redisadapter "github.com/Dmungal1308/QuickSales-sub000/internal/adapter/redis"
	"github.com/Dmungal1308/QuickSales-sub000/internal/adapter/rest"
	"github.com/Dmungal1308/QuickSales-sub000/internal/app/config"
	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/service"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

// App wires the client core: session store, REST client, repositories and
// services, with redis and NATS attached when configured.
type App struct {
	cfg *config.Config
	log logger.Logger

	Sessions session.Store
	Auth     *service.AuthService
	Users    *service.UserService
	Wallet   *service.WalletService
	Chat     *service.ChatService

	products  *rest.ProductRepository
	favorites *rest.FavoriteRepository
	publisher natsadapter.MessagePublisher

	redisClient *goredis.Client
	natsConn    *nats.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, API=%s", cfg.Env, cfg.API.BaseURL)

	a := &App{cfg: cfg, log: appLogger}

	if cfg.Redis.Addr != "" {
		appLogger.Info("Initializing Redis client...")
		a.redisClient, err = redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
	}

	switch cfg.Session.Backend {
	case "redis":
		if a.redisClient == nil {
			return nil, fmt.Errorf("session backend is redis but no redis address is configured")
		}
		a.Sessions = redisadapter.NewSessionStore(a.redisClient, cfg.Session.Key)
		appLogger.Info("Session store initialized (redis)")
	default:
		a.Sessions = session.NewMemoryStore()
		appLogger.Info("Session store initialized (memory)")
	}

	a.publisher = natsadapter.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		appLogger.Info("Connecting to NATS...")
		a.natsConn, err = natsadapter.NewConnection(cfg.NATS)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		a.publisher, err = natsadapter.NewPublisher(a.natsConn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize NATS publisher: %w", err)
		}
		appLogger.Info("NATS publisher initialized")
	}

	client := rest.NewClient(rest.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, a.Sessions, appLogger)
	a.products = rest.NewProductRepository(client)
	a.favorites = rest.NewFavoriteRepository(client)
	authRepo := rest.NewAuthRepository(client)
	userRepo := rest.NewUserRepository(client)
	walletRepo := rest.NewWalletRepository(client)
	chatRepo := rest.NewChatRepository(client)

	var productCache service.ProductCache
	if a.redisClient != nil {
		productCache = redisadapter.NewProductCache(a.redisClient, cfg.Cache.ProductTTL)
		appLogger.Info("Product cache initialized")
	}

	a.Auth = service.NewAuthService(authRepo, a.Sessions, appLogger)
	a.Users = service.NewUserService(userRepo, a.Sessions, appLogger)
	a.Wallet = service.NewWalletService(walletRepo, a.Sessions, a.publisher, appLogger)
	a.Chat = service.NewChatService(chatRepo, a.products, productCache, a.Sessions, a.publisher, appLogger)

	return a, nil
}

// Catalog builds a derived-view controller for one screen. The caller owns
// it and must Close it when the screen goes away.
func (a *App) Catalog(parent context.Context, view service.View) *service.CatalogController {
	return service.NewCatalogController(parent, view, a.products, a.favorites, a.publisher, a.log)
}

func (a *App) Logger() logger.Logger { return a.log }

func (a *App) Close() {
	if a.natsConn != nil {
		a.natsConn.Close()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing redis client: %v", err)
		}
	}
	_ = a.log.Sync()
}
