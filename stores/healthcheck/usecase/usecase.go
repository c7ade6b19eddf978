package usecase

import (
	"github.com/x-xyz/mintstake/base/ctx"
	hcdomain "github.com/x-xyz/mintstake/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.PingStore(context)
}
