// Package bot wires the Telegram transport to the verification pipeline:
// it owns the webhook server, routes updates, renders keyboards, and
// relays verdicts and escalations back into chats.
package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tg "github.com/go-telegram/bot"

	"github.com/telepay/receiptbot/internal/bot/config"
	"github.com/telepay/receiptbot/internal/filex"
	"github.com/telepay/receiptbot/internal/logging"
	"github.com/telepay/receiptbot/internal/ocrx"
	"github.com/telepay/receiptbot/internal/pdfx"
	"github.com/telepay/receiptbot/internal/receipts"
	"github.com/telepay/receiptbot/internal/verification"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *receipts.Store
	tgbot    *tg.Bot
	pipeline *verification.Pipeline
	support  *supportState
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	store, err := receipts.NewStore(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if _, err := filex.EnsureDir(cfg.DownloadsDir); err != nil {
		return nil, err
	}

	app := &App{
		config:  cfg,
		logger:  logger,
		store:   store,
		support: newSupportState(),
	}

	b, err := tg.New(cfg.Token, tg.WithDefaultHandler(app.onUpdate))
	if err != nil {
		return nil, fmt.Errorf("bot init error: %w", err)
	}
	app.tgbot = b

	vcfg := verification.Config{
		StoreName:        cfg.StoreName,
		SellerTaxID:      cfg.SellerTaxID,
		PaymentAmount:    cfg.PaymentAmount,
		MetadataProducer: cfg.MetadataProducer,
		MetadataTitle:    cfg.MetadataTitle,
		Languages:        cfg.OCRLanguages,
		MIMEType:         "application/pdf",
		MaxFileSize:      cfg.MaxFileSize,
	}

	app.pipeline = verification.NewPipeline(
		verification.NewAcquirer(&fileSource{bot: b}, cfg.DownloadsDir, vcfg),
		pdfx.NewPopplerRenderer(),
		ocrx.NewTesseractRecognizer(),
		verification.NewFieldValidator(vcfg),
		verification.NewMetadataValidator(pdfx.NewMetadataReader(), vcfg, logger),
		store.Receipts(),
		app, // Notifier
		app, // Escalator
		vcfg,
		logger,
	)

	return app, nil
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the bot and blocks until the context is canceled or a signal
// arrives. With WebhookHost set it registers the webhook and serves it over
// HTTP; otherwise it falls back to long polling (local development).
func (a *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.logger.Info(ctx, "Starting app...")
	a.initSignalHandler(cancelFunc)

	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "store close failed", "error", err)
		}
	}()

	if a.config.WebhookHost == "" {
		a.logger.Info(ctx, "no webhook host configured, using long polling")
		a.tgbot.Start(ctx)
		return nil
	}

	return a.runWebhook(ctx)
}

func (a *App) runWebhook(ctx context.Context) error {
	path := "/webhook/" + a.config.Token
	webhookURL := a.config.WebhookHost + path

	_, err := a.tgbot.SetWebhook(ctx, &tg.SetWebhookParams{
		URL:                webhookURL,
		DropPendingUpdates: true,
	})
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	defer func() {
		deleteCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := a.tgbot.DeleteWebhook(deleteCtx, &tg.DeleteWebhookParams{}); err != nil {
			a.logger.Warn(ctx, "delete webhook failed", "error", err)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle(path, a.tgbot.WebhookHandler())
	srv := &http.Server{Addr: a.config.ListenAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go a.tgbot.StartWebhook(ctx)

	a.logger.Info(ctx, "webhook server listening", "addr", a.config.ListenAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("webhook server: %w", err)
	}

	return nil
}
