package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/marketplace/internal/domain/cron"
	"github.com/questx-lab/marketplace/internal/host"
	"github.com/questx-lab/marketplace/pkg/prometheus"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func (s *srv) startHost(*cli.Context) error {
	if err := s.loadStore(); err != nil {
		return err
	}
	defer s.store.Close()

	if err := s.loadMessageQueue(); err != nil {
		return err
	}
	if s.redisClient != nil {
		defer s.redisClient.Close()
	}

	if err := s.loadPublisher(); err != nil {
		return err
	}
	defer s.publisher.Stop(s.ctx)

	if err := s.loadRuntime(); err != nil {
		return err
	}

	if err := s.applyGenesis(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := xcontext.Configs(ctx)

	rpcServer := rpc.NewServer()
	defer rpcServer.Stop()
	if err := rpcServer.RegisterName(cfg.Host.RPCName, host.NewRPCService(ctx, s.runtime)); err != nil {
		return err
	}

	hostServer := &http.Server{Addr: cfg.Host.Address(), Handler: rpcServer}
	promServer := &http.Server{Addr: cfg.PrometheusServer.Address(), Handler: prometheus.NewHandler()}

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewScheduledMessageCronJob(
		s.runtime,
		s.queue,
		s.clock,
		time.Duration(cfg.Chain.MessagePollIntervalMs)*time.Millisecond,
	))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		xcontext.Logger(ctx).Infof("Started rpc server at %s", cfg.Host.Address())
		if err := hostServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		xcontext.Logger(ctx).Infof("Started prometheus server at %s", cfg.PrometheusServer.Address())
		if err := promServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		cronJobManager.Start(ctx)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		xcontext.Logger(s.ctx).Infof("Shutting down the host")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return errors.Join(hostServer.Shutdown(shutdownCtx), promServer.Shutdown(shutdownCtx))
	})

	return g.Wait()
}
