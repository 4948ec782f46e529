package service

import (
	"context"
	"testing"

	"github.com/nathanpras/storefront-service/config"
	"github.com/stretchr/testify/assert"
)

func Test_Health(t *testing.T) {
	conf := config.Config{
		MongoDBConfig: config.MongoDBConfig{
			DatabaseURL:  "mongodb://localhost:27017",
			DatabaseName: "storefront",
		},
	}

	t.Run("connected store", func(t *testing.T) {
		repo := newFakeRepository()
		svc := CreateSystemService(repo, conf)

		resp := svc.Health(context.Background())

		assert.Equal(t, "running", resp.Backend)
		assert.Equal(t, "connected and working", resp.Database)
		assert.Equal(t, "connected", resp.ConnectionStatus)
		assert.Equal(t, "set", resp.DatabaseURL)
		assert.Equal(t, "set", resp.DatabaseName)
		assert.Equal(t, []string{"product", "order"}, resp.Collections)
	})

	t.Run("store unavailable", func(t *testing.T) {
		repo := newFakeRepository()
		repo.available = false
		svc := CreateSystemService(repo, config.Config{})

		resp := svc.Health(context.Background())

		assert.Equal(t, "running", resp.Backend)
		assert.Equal(t, "not available", resp.Database)
		assert.Equal(t, "not connected", resp.ConnectionStatus)
		assert.Equal(t, "not set", resp.DatabaseURL)
		assert.Empty(t, resp.Collections)
	})
}
