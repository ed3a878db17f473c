package service

import (
	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
)

type Services struct {
	PipelineService PipelineService
	SharesService   SharesService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	pipeline := NewPipelineService(
		storages.Entities,
		NewRedactionService(cfg.Redaction, logger),
		NewVaultGatewayService(cfg.Redaction),
		NewAttachmentGuardService(logger),
		logger,
	)

	return &Services{
		PipelineService: NewPipelineValidationService().Wrap(pipeline),
		SharesService:   NewSharesService(storages.Shares, logger),
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfo,
	}, nil
}
