package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/marketplace/config"
	"github.com/questx-lab/marketplace/internal/client"
	"github.com/questx-lab/marketplace/internal/deliveries"
	"github.com/questx-lab/marketplace/internal/domain"
	"github.com/questx-lab/marketplace/internal/host"
	"github.com/questx-lab/marketplace/internal/repository"
	"github.com/questx-lab/marketplace/pkg/clock"
	"github.com/questx-lab/marketplace/pkg/kafka"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/logger"
	"github.com/questx-lab/marketplace/pkg/pubsub"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/questx-lab/marketplace/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	store       kvstore.Store
	redisClient xredis.Client
	publisher   pubsub.Publisher
	queue       host.MessageQueue
	clock       clock.Clock
	runtime     *host.Runtime

	nftSettingRepo    repository.NFTSettingRepository
	tokenRepo         repository.TokenRepository
	sellOfferRepo     repository.SellOfferRepository
	collectionRepo    repository.CollectionRepository
	buyHistoryRepo    repository.BuyHistoryRepository
	marketSettingRepo repository.MarketplaceSettingRepository

	nftDomain         domain.NFTDomain
	marketplaceDomain domain.MarketplaceDomain
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}))

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}
	s.ctx = xcontext.WithSnowFlake(s.ctx, node)

	return nil
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := xcontext.Configs(s.ctx).Storage

	var dialector gorm.Dialector
	switch cfg.Engine {
	case "mysql":
		dialector = mysql.Open(cfg.Database.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("storage engine %s is not a sql database", cfg.Engine)
	}

	return gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
}

func (s *srv) loadStore() error {
	cfg := xcontext.Configs(s.ctx).Storage

	switch cfg.Engine {
	case "memory", "":
		s.store = kvstore.NewMemoryStore()

	case "badger":
		store, err := kvstore.NewBadgerStore(cfg.Path)
		if err != nil {
			return err
		}
		s.store = store

	case "mysql", "sqlite":
		db, err := s.newDatabase()
		if err != nil {
			return err
		}

		if cfg.Engine == "sqlite" {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			// Sqlite doesn't allow concurrent writers.
			sqlDB.SetMaxOpenConns(1)
		}
		s.store = kvstore.NewGormStore(db)

	default:
		return fmt.Errorf("unknown storage engine %s", cfg.Engine)
	}

	s.ctx = xcontext.WithStore(s.ctx, s.store)
	xcontext.Logger(s.ctx).Infof("Loaded %s storage", cfg.Engine)
	return nil
}

func (s *srv) loadMessageQueue() error {
	cfg := xcontext.Configs(s.ctx).Redis
	if cfg.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("No redis address, scheduled messages are kept in memory")
		s.queue = host.NewMemoryMessageQueue()
		return nil
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		return err
	}

	s.redisClient = redisClient
	s.queue = host.NewRedisMessageQueue(redisClient, cfg.MessageQueueKey)
	return nil
}

func (s *srv) loadPublisher() error {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("No kafka address, events are only logged")
		s.publisher = pubsub.NewNopPublisher()
		return nil
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		return err
	}

	s.publisher = publisher
	return nil
}

func (s *srv) loadRepos() {
	s.nftSettingRepo = repository.NewNFTSettingRepository()
	s.tokenRepo = repository.NewTokenRepository()
	s.sellOfferRepo = repository.NewSellOfferRepository()
	s.collectionRepo = repository.NewCollectionRepository()
	s.buyHistoryRepo = repository.NewBuyHistoryRepository()
	s.marketSettingRepo = repository.NewMarketplaceSettingRepository()
}

func (s *srv) loadDomains() error {
	cfg := xcontext.Configs(s.ctx).Marketplace

	settlement, err := domain.NewSettlementModel(cfg.Settlement)
	if err != nil {
		return err
	}

	feePolicy, err := domain.NewFeePolicy(cfg.FeePolicy)
	if err != nil {
		return err
	}

	env := s.runtime.Environment()
	s.nftDomain = domain.NewNFTDomain(env, s.nftSettingRepo, s.tokenRepo)
	s.marketplaceDomain = domain.NewMarketplaceDomain(
		env,
		client.NewNFTCaller(env),
		s.sellOfferRepo,
		s.collectionRepo,
		s.buyHistoryRepo,
		s.marketSettingRepo,
		domain.MarketplaceOptions{
			Settlement:       settlement,
			FeePolicy:        feePolicy,
			RecordBuyHistory: cfg.RecordBuyHistory,
			AutoExpire:       cfg.AutoExpire,
		},
	)

	return nil
}

func (s *srv) loadRuntime() error {
	s.clock = clock.NewSystemClock()
	s.runtime = host.NewRuntime(s.clock, s.queue, s.publisher)

	s.loadRepos()
	if err := s.loadDomains(); err != nil {
		return err
	}

	cfg := xcontext.Configs(s.ctx)
	nftRouter := deliveries.NewNFTRouter(s.nftDomain)
	for _, c := range cfg.Genesis.Collections {
		if err := s.runtime.Register(c.Address, nftRouter); err != nil {
			return err
		}
	}

	return s.runtime.Register(cfg.Marketplace.Address, deliveries.NewMarketplaceRouter(s.marketplaceDomain))
}
