package repository

import (
	"strconv"
	"sync"

	bCtx "github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/log"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/auction"
	"github.com/x-xyz/mintstake/service/cache"
	"golang.org/x/xerrors"
)

type auctionRepo struct {
	// serializes read-compare-write of the block number guard
	mu    sync.Mutex
	cache cache.Service
}

// NewAuctionRepo keeps the latest snapshot of every auction. The cache
// service is expected to be prefixed with keys.PfxAuctionSnapshot.
func NewAuctionRepo(c cache.Service) auction.Repo {
	return &auctionRepo{cache: c}
}

func auctionKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func (r *auctionRepo) FindOne(ctx bCtx.Ctx, id uint64) (*auction.Snapshot, error) {
	s := &auction.Snapshot{}
	if err := r.cache.Get(ctx, auctionKey(id), s); err == cache.ErrNotFound {
		return nil, domain.Reject(domain.RejectionAuctionNotFound, "auction %d has not been loaded", id)
	} else if err != nil {
		ctx.WithFields(log.Fields{"id": id, "err": err}).Error("cache.Get failed")
		return nil, xerrors.Errorf("failed to load auction %d: %w", id, err)
	}
	return s, nil
}

func (r *auctionRepo) Upsert(ctx bCtx.Ctx, s *auction.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &auction.Snapshot{}
	if err := r.cache.Get(ctx, auctionKey(s.Id), stored); err == nil {
		if stored.BlockNumber > s.BlockNumber {
			ctx.WithFields(log.Fields{"id": s.Id, "stored": stored.BlockNumber, "incoming": s.BlockNumber}).Warn("stale auction snapshot")
			return xerrors.Errorf("auction %d at block %d: %w", s.Id, s.BlockNumber, domain.ErrStaleSnapshot)
		}
	} else if err != cache.ErrNotFound {
		ctx.WithFields(log.Fields{"id": s.Id, "err": err}).Error("cache.Get failed")
		return err
	}

	if err := r.cache.Set(ctx, auctionKey(s.Id), s); err != nil {
		ctx.WithFields(log.Fields{"id": s.Id, "err": err}).Error("cache.Set failed")
		return err
	}
	return nil
}
