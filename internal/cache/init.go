package cache

import (
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/logger"
)

// Initialize builds the process wide record set cache
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	c := NewInMemoryCache(cfg)
	log.Infow("record set cache initialized",
		"enabled", cfg.Storage.CacheEnabled,
		"ttl", cfg.Storage.CacheTTL.String())
	return c
}
