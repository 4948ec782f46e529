package service

import (
	"context"
	"fmt"

	"github.com/nathanpras/storefront-service/config"
	"github.com/nathanpras/storefront-service/internal/dto"
	"github.com/nathanpras/storefront-service/internal/repository"
)

const maxReportedCollections = 10

type SystemServiceImpl struct {
	mongoDBRepo repository.MongoDBStorefrontRepository
	config      config.Config
}

func CreateSystemService(mongoDBRepo repository.MongoDBStorefrontRepository, config config.Config) SystemService {
	return &SystemServiceImpl{mongoDBRepo: mongoDBRepo, config: config}
}

func envIndicator(value string) string {
	if value != "" {
		return "set"
	}
	return "not set"
}

// Health is read-only and side-effect-free: it reports store connectivity and
// which environment indicators are configured.
func (s *SystemServiceImpl) Health(ctx context.Context) dto.HealthResponse {
	resp := dto.HealthResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envIndicator(s.config.MongoDBConfig.DatabaseURL),
		DatabaseName:     envIndicator(s.config.MongoDBConfig.DatabaseName),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if !s.mongoDBRepo.Available() {
		return resp
	}

	if err := s.mongoDBRepo.Ping(ctx); err != nil {
		resp.Database = fmt.Sprintf("error: %s", err.Error())
		return resp
	}

	resp.Database = "available"
	resp.ConnectionStatus = "connected"

	collections, err := s.mongoDBRepo.ListCollections(ctx)
	if err != nil {
		resp.Database = fmt.Sprintf("connected but error: %s", err.Error())
		return resp
	}

	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	resp.Collections = collections
	resp.Database = "connected and working"

	return resp
}
