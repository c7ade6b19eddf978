package repository

import (
	"bytes"
	"time"

	"github.com/x-xyz/mintstake/base/ctx"
	hcdomain "github.com/x-xyz/mintstake/domain/healthcheck"
	"github.com/x-xyz/mintstake/domain/keys"
	"github.com/x-xyz/mintstake/service/cache/provider"
	"golang.org/x/xerrors"
)

var probe = []byte("1")

type impl struct {
	store provider.Provider
}

// New checks the provider snapshots are kept in
func New(store provider.Provider) hcdomain.HealthCheckRepo {
	return &impl{
		store: store,
	}
}

func (im *impl) PingStore(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()

	key := keys.RedisKey(keys.PfxHealthCheck, "probe")
	if err := im.store.Set(ctx, key, probe, 30*time.Second); err != nil {
		context.WithField("err", err).Error("probe set failed")
		return err
	}
	val, _, err := im.store.Get(ctx, key)
	if err != nil {
		context.WithField("err", err).Error("probe get failed")
		return err
	}
	if !bytes.Equal(val, probe) {
		return xerrors.Errorf("probe read back %q", val)
	}
	if err := im.store.Del(ctx, key); err != nil {
		context.WithField("err", err).Error("probe del failed")
		return err
	}
	return nil
}
