package service

import (
	"context"

	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/response"
)

type appInfoService struct {
	appVersion  string
	productName string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.ProductName == "" {
		return nil, ErrProductNameIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		productName: cfg.ProductName,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetProductName(ctx context.Context) string {
	return s.productName
}

func (s *appInfoService) ServerHeader() string {
	return response.ServerIdent(s.productName, s.appVersion)
}
