package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/storepro/storefront/internal/config"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:    "catalog-api",
				Timeout: 5 * time.Second,
				// The catalog degrades to fallback data when unreachable,
				// so an upstream outage must not fail the whole check.
				SkipOnErr: true,
				Check: func(ctx context.Context) error {

					req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Catalog.BaseURL+"/products/categories", nil)
					if err != nil {
						return fmt.Errorf("failed to build catalog health request: %w", err)
					}

					resp, err := http.DefaultClient.Do(req)
					if err != nil {
						return fmt.Errorf("catalog API unreachable: %w", err)
					}
					defer resp.Body.Close()

					if resp.StatusCode >= 400 {
						return fmt.Errorf("catalog API returned status %d", resp.StatusCode)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
