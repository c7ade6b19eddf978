package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/database/redisclient"
	"github.com/x-xyz/mintstake/base/log"
	"github.com/x-xyz/mintstake/base/metrics"
	bValidator "github.com/x-xyz/mintstake/base/validator"
	"github.com/x-xyz/mintstake/domain/keys"
	mmiddleware "github.com/x-xyz/mintstake/middleware"
	"github.com/x-xyz/mintstake/service/cache"
	"github.com/x-xyz/mintstake/service/cache/provider"
	"github.com/x-xyz/mintstake/service/cache/provider/compound"
	"github.com/x-xyz/mintstake/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/mintstake/service/cache/provider/redis"
	"github.com/x-xyz/mintstake/service/redis"
	amount_delivery "github.com/x-xyz/mintstake/stores/amount/delivery/http"
	auction_delivery "github.com/x-xyz/mintstake/stores/auction/delivery/http"
	auction_usecase "github.com/x-xyz/mintstake/stores/auction/usecase"
	hc_delivery "github.com/x-xyz/mintstake/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/mintstake/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/mintstake/stores/healthcheck/usecase"
	snapshot_repository "github.com/x-xyz/mintstake/stores/snapshot/repository"
	stake_delivery "github.com/x-xyz/mintstake/stores/stake/delivery/http"
	stake_usecase "github.com/x-xyz/mintstake/stores/stake/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.String("address", "", "listen address, overrides server.address")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	if f := pflag.Lookup("address"); f.Changed {
		if err := viper.BindPFlag("server.address", f); err != nil {
			panic(err)
		}
	}

	if err := log.Init(viper.GetString("log.level"), viper.GetBool("debug")); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// snapshotProvider picks where snapshots live. local keeps them in process,
// redis shares them between replicas and compound reads through a local
// layer in front of redis.
func snapshotProvider(c ctx.Ctx) provider.Provider {
	kind := viper.GetString("snapshot.provider")
	localMB := viper.GetInt("snapshot.localCacheMB")
	if localMB <= 0 {
		localMB = 64
	}
	if kind == "" || kind == "local" {
		c.WithField("sizeMB", localMB).Info("snapshots kept in process")
		return primitive.NewPrimitive("snapshot", localMB)
	}

	c.Info("init redis snapshot store")
	pool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		},
	)
	red := redisProvider.NewRedis(redis.New("snapshot", metrics.New("redis"), pool))

	switch kind {
	case "redis":
		return red
	case "compound":
		return compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive("snapshot", localMB),
			red,
		})
	}
	c.WithField("provider", kind).Panic("unknown snapshot.provider")
	return nil
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	store := snapshotProvider(context)
	ttl := viper.GetDuration("snapshot.ttl")
	auctionCache := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxAuctionSnapshot,
		Cache: store,
	})
	accountCache := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxAccountSnapshot,
		Cache: store,
	})

	// construct repository, usecase and delivery
	auctionRepo := snapshot_repository.NewAuctionRepo(auctionCache)
	accountRepo := snapshot_repository.NewAccountRepo(accountCache)

	auction := auction_usecase.New(auctionRepo, metrics.New("auction"))
	stake := stake_usecase.New(accountRepo, metrics.New("stake"))

	auction_delivery.New(e, auction)
	stake_delivery.New(e, stake)
	amount_delivery.New(e)

	hc_delivery.New(e, hc_usecase.New(hc_repo.New(store)))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
