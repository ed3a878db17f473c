package http

import (
	"time"

	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/service"
	"github.com/MKhiriev/go-secure-data/internal/utils"
)

type Handler struct {
	services *service.Services

	ids            *utils.UUIDGenerator
	hashKey        string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		ids:            utils.NewUUIDGenerator(),
		hashKey:        cfg.App.HashKey,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
