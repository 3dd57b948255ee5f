package app

import (
	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/utils"
)

type Config struct {
	Port         string
	ServiceName  string
	Environment  string
	StoreBackend string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:         utils.GetEnv("PORT", "8080", log),
		ServiceName:  utils.GetEnv("SERVICE_NAME", "catalog-backend", log),
		Environment:  utils.GetEnv("ENVIRONMENT", "development", log),
		StoreBackend: utils.GetEnv("STORE_BACKEND", "memory", log),
	}
}
