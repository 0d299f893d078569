package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker pings every configured dependency. Nil dependencies are
// skipped.
type HealthChecker struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Timeout time.Duration
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: StatusHealthy, Services: []Service{}}

	if h.DB != nil {
		status.add(h.ping(ctx, "PostgreSQL", func(ctx context.Context) error {
			sqlDB, err := h.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}))
	}
	if h.Redis != nil {
		status.add(h.ping(ctx, "Redis", func(ctx context.Context) error {
			return h.Redis.Ping(ctx).Err()
		}))
	}

	status.Timestamp = time.Now().UTC()
	return status
}

func (h *HealthChecker) ping(ctx context.Context, name string, fn func(context.Context) error) Service {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		return Service{Name: name, Status: "down", Message: err.Error()}
	}
	return Service{Name: name, Status: "up"}
}

func (s *HealthStatus) add(svc Service) {
	if svc.Status != "up" {
		s.Status = StatusDegraded
	}
	s.Services = append(s.Services, svc)
}
