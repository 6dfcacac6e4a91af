package app

import (
	"net/http"

	"github.com/ExeHalah/PlayerInfo/internal/config"
	"github.com/ExeHalah/PlayerInfo/internal/server"
	"github.com/ExeHalah/PlayerInfo/internal/service"
	"github.com/ExeHalah/PlayerInfo/internal/service/cache"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the HTTP surface.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Router http.Handler

	cacheSvc *cache.CacheService
}

// Build assembles all services. The redis-backed character cache is
// optional: when disabled or unreachable the service runs uncached and
// every skill lookup goes straight to the character API, which matches
// the degraded-but-working posture used for every other upstream here.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	var cacheSvc *cache.CacheService
	if cfg.Cache.Enabled {
		svc, err := cache.NewCacheService(cache.CacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			logger.Warn("Character cache unavailable, continuing without it", zap.Error(err))
		} else {
			cacheSvc = svc
		}
	}

	assets := service.NewAssetResolver(cfg.Upstream.AssetBaseURL)
	characters := service.NewCharacterService(httpClient, cfg.Upstream.CharacterBaseURL, cacheSvc, logger)
	skills := service.NewSkillFormatter(characters)
	players := service.NewPlayerClient(httpClient, cfg.Upstream.PlayerInfoBaseURL, cfg.Regions, logger)
	wishlist := service.NewWishlistClient(httpClient, cfg.Upstream.WishlistBaseURL, logger)
	profiles := service.NewProfileService(players, wishlist, skills, assets, logger)

	handler := server.NewHandler(cfg.Server.APIKey, profiles, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Router:   server.NewRouter(handler),
		cacheSvc: cacheSvc,
	}, nil
}

// Close releases held connections.
func (c *Container) Close() {
	if c.cacheSvc != nil {
		_ = c.cacheSvc.Close()
	}
}
