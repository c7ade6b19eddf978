package healthcheck

import (
	"github.com/x-xyz/mintstake/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingStore round trips a probe value through the snapshot store
	PingStore(context ctx.Ctx) error
}
