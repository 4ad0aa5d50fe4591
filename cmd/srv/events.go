package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/kafka"
	"github.com/questx-lab/marketplace/pkg/pubsub"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startEvents(*cli.Context) error {
	cfg := xcontext.Configs(s.ctx).Kafka

	subscriber, err := kafka.NewSubscriber(cfg.GroupID, []string{cfg.Addr}, []string{cfg.EventTopic}, s.logEvent)
	if err != nil {
		return err
	}
	defer subscriber.Stop(s.ctx)

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := subscriber.Subscribe(ctx); err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Subscribed to topic %s", cfg.EventTopic)
	<-ctx.Done()
	return nil
}

func (s *srv) logEvent(ctx context.Context, pack *pubsub.Pack, t time.Time) {
	var event model.Event
	if err := json.Unmarshal(pack.Msg, &event); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot decode event of %s: %v", string(pack.Key), err)
		return
	}

	xcontext.Logger(s.ctx).Infof("[%s] %s emitted %s in tx %s: %s",
		t.Format(time.RFC3339), event.Contract, event.Name, event.TxID, string(event.Data))
}
