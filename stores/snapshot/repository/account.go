package repository

import (
	"sync"

	bCtx "github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/log"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/stake"
	"github.com/x-xyz/mintstake/service/cache"
	"golang.org/x/xerrors"
)

type accountRepo struct {
	mu    sync.Mutex
	cache cache.Service
}

// NewAccountRepo keeps the latest staking snapshot of every account
func NewAccountRepo(c cache.Service) stake.Repo {
	return &accountRepo{cache: c}
}

func (r *accountRepo) FindOne(ctx bCtx.Ctx, account domain.Address) (*stake.AccountSnapshot, error) {
	s := &stake.AccountSnapshot{}
	if err := r.cache.Get(ctx, account.ToLowerStr(), s); err == cache.ErrNotFound {
		return nil, xerrors.Errorf("account %s: %w", account, domain.ErrNotFound)
	} else if err != nil {
		ctx.WithFields(log.Fields{"account": account, "err": err}).Error("cache.Get failed")
		return nil, xerrors.Errorf("failed to load account %s: %w", account, err)
	}
	return s, nil
}

func (r *accountRepo) Upsert(ctx bCtx.Ctx, s *stake.AccountSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := s.Account.ToLowerStr()
	stored := &stake.AccountSnapshot{}
	if err := r.cache.Get(ctx, key, stored); err == nil {
		if stored.BlockNumber > s.BlockNumber {
			ctx.WithFields(log.Fields{"account": s.Account, "stored": stored.BlockNumber, "incoming": s.BlockNumber}).Warn("stale account snapshot")
			return xerrors.Errorf("account %s at block %d: %w", s.Account, s.BlockNumber, domain.ErrStaleSnapshot)
		}
	} else if err != cache.ErrNotFound {
		ctx.WithFields(log.Fields{"account": s.Account, "err": err}).Error("cache.Get failed")
		return err
	}

	if err := r.cache.Set(ctx, key, s); err != nil {
		ctx.WithFields(log.Fields{"account": s.Account, "err": err}).Error("cache.Set failed")
		return err
	}
	return nil
}
