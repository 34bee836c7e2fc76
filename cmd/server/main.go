package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fieldops/stock-transfers-service/internal/adapter/httpapi"
	"github.com/fieldops/stock-transfers-service/internal/config"
	impl_messaging "github.com/fieldops/stock-transfers-service/internal/impl/gateway/messaging"
	impl_platform "github.com/fieldops/stock-transfers-service/internal/impl/gateway/platform"
	"github.com/fieldops/stock-transfers-service/internal/impl/gateway/persistence/sqlite"
	impl_settlement "github.com/fieldops/stock-transfers-service/internal/impl/usecase/settlement"
	impl_transfer "github.com/fieldops/stock-transfers-service/internal/impl/usecase/transfer"
	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	transferRepo := sqlite.NewTransferRequestRepository(db)
	stockRepo := sqlite.NewStockLedgerRepository(db)
	uow := sqlite.NewUnitOfWork(db)

	clock := impl_platform.NewSystemClock()
	ids := impl_platform.NewUUIDGenerator()
	codes := impl_platform.NewOTPPairGenerator()

	var notifier messaging.Notifier
	if cfg.BeanstalkAddr != "" {
		bn := impl_messaging.NewBeanstalkNotifier(cfg.BeanstalkAddr, cfg.BeanstalkTube)
		defer bn.Close()
		notifier = bn
		log.Printf("notifications enabled via beanstalk at %s", cfg.BeanstalkAddr)
	} else {
		notifier = impl_messaging.NewNoopNotifier()
		log.Print("notifications disabled, no BEANSTALK_ADDR configured")
	}

	engine := impl_settlement.NewEngine(transferRepo, stockRepo)

	createUC := impl_transfer.NewCreateTransferUsecaseImpl(uow, transferRepo, codes, ids, clock, notifier, cfg.TransferTTL)
	confirmUC := impl_transfer.NewConfirmTransferUsecaseImpl(uow, transferRepo, engine, clock, notifier)
	cancelUC := impl_transfer.NewCancelTransferUsecaseImpl(transferRepo, clock, notifier)
	listUC := impl_transfer.NewListPendingUsecaseImpl(transferRepo, clock)
	sweepUC := impl_transfer.NewSweepExpiredUsecaseImpl(transferRepo, clock, notifier)

	handler := httpapi.NewHandler(createUC, confirmUC, cancelUC, listUC)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(cfg.ConfirmRateLimit),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("http server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return runReaper(ctx, sweepUC, cfg.SweepInterval)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("shutdown: %v", err)
	}

	log.Print("shutdown complete")
}

// runReaper periodically flips lapsed requests to EXPIRED so abandoned
// transfers do not linger in the pending lists.
func runReaper(ctx context.Context, sweep port_transfer.SweepExpiredUseCase, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			out, err := sweep.Execute(ctx)
			if err != nil {
				log.Printf("reaper: sweep failed: %v", err)
				continue
			}
			if out.Transitioned > 0 {
				log.Printf("reaper: expired %d transfer requests", out.Transitioned)
			}
		}
	}
}
