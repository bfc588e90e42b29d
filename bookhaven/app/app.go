package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookhaven/bookhaven/config"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/handler"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/server"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/service"
	"github.com/Astemirdum/bookhaven/pkg/kafka"
	"github.com/Astemirdum/bookhaven/pkg/kvstore"
	"github.com/Astemirdum/bookhaven/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Core is the store, the event publisher and the managers built over them.
type Core struct {
	Store     kvstore.Store
	Publisher kafka.Publisher
	Service   *service.Service
	log       *zap.Logger
}

func NewCore(ctx context.Context, cfg config.Config, log *zap.Logger) (*Core, error) {
	store, err := kvstore.New(ctx, cfg.Store, log)
	if err != nil {
		return nil, errors.Wrap(err, "store init")
	}
	publisher, err := kafka.NewPublisher(cfg.Kafka, log)
	if err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "kafka.NewPublisher")
	}
	svc := service.NewService(store, log,
		service.WithPublisher(publisher),
		service.WithDateLayout(cfg.App.DateLayout),
		service.WithAttachmentLimit(cfg.App.AttachmentMaxBytes),
	)
	return &Core{
		Store:     store,
		Publisher: publisher,
		Service:   svc,
		log:       log,
	}, nil
}

func (c *Core) Close() {
	if err := c.Publisher.Close(); err != nil {
		c.log.Error("publisher close", zap.Error(err))
	}
	if err := c.Store.Close(); err != nil {
		c.log.Error("store close", zap.Error(err))
	}
}

// Run serves HTTP until SIGINT or SIGTERM.
func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "bookhaven")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Serve(ctx, cfg, log); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}

// Serve loads the collections, starts the server and shuts it down once ctx is done.
func Serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	core, err := NewCore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()

	if err := core.Service.LoadAll(ctx); err != nil {
		return errors.Wrap(err, "load collections")
	}

	svc := core.Service
	h := handler.New(svc.Books, svc.Donations, svc.Poems, svc.Catalog, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ", zap.String("addr", srv.Addr()))

	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.Run()
	}()

	select {
	case err := <-runErr:
		return errors.Wrap(err, "server run")
	case <-ctx.Done():
	}
	log.Debug("Graceful shutdown")

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
