package app

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/libdesk/library-system/config"
	"github.com/libdesk/library-system/internal/handler"
	"github.com/libdesk/library-system/internal/server"
	"github.com/libdesk/library-system/internal/service"
	"github.com/libdesk/library-system/internal/store"
	"github.com/libdesk/library-system/pkg/logger"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")

	st := store.New(cfg.Store, log)
	svc := service.NewService(st, cfg.Lending, log)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-ctx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if err := svc.Flush(closeCtx); err != nil {
			log.Error("flush snapshot", zap.Error(err))
		}
		return nil
	})

	err := g.Wait()
	log.Info("Graceful shutdown finished")
	return err
}
