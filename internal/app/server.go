package app

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"tg-casino/internal/config"
	"tg-casino/internal/db"
	"tg-casino/internal/event"
	"tg-casino/internal/history"
	"tg-casino/internal/jobs"
	"tg-casino/internal/leaderboard"
	"tg-casino/internal/logger"
	"tg-casino/internal/monitoring"
	"tg-casino/internal/player"
	"tg-casino/internal/rng"
	"tg-casino/internal/round"
	"tg-casino/internal/security"
	"tg-casino/internal/wallet"
	"tg-casino/internal/withdraw"
	"tg-casino/internal/ws"
)

type Server struct {
	app     *fiber.App
	cfg     *config.Config
	log     *zap.Logger
	manager *jobs.Manager
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New("casino", cfg.Env)

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	monitoring.Init()

	bus := event.NewBus()
	hub := ws.NewHub()
	ledger := player.NewSQLRepo(database)
	hist := history.NewSQLRepo(database)

	rounds := round.New(ledger, hist, bus, hub, rng.Crypto(), log)
	rounds.SetSeedManager(rng.NewSeedManager())

	walletSvc := wallet.New(ledger, wallet.NewSQLRecorder(database), bus, log)
	withdrawSvc := withdraw.New(ledger, withdraw.NewSQLRepo(database), bus, log)

	var board leaderboard.Store
	if cfg.RedisAddr != "" {
		board = leaderboard.NewRedisStore(cfg.RedisAddr)
	} else {
		board = leaderboard.NewMemoryStore()
	}

	rtp := monitoring.NewRTPTracker()
	registerConsumers(bus, hub, board, rtp, log)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.Env != "development",
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":        "ok",
			"active_rounds": rounds.ActiveRounds(),
			"ws_clients":    hub.Clients(),
		})
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api")
	player.RegisterRoutes(api, ledger)
	history.RegisterRoutes(api, hist)
	round.RegisterRoutes(api, rounds)
	wallet.RegisterRoutes(api, walletSvc)
	withdraw.RegisterRoutes(api, withdrawSvc)
	leaderboard.RegisterRoutes(api, board)

	admin := app.Group("/admin", security.AdminGuard(cfg.AdminToken))
	withdraw.RegisterAdminRoutes(admin, withdrawSvc)
	admin.Get("/rtp", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"rtp": rtp.Snapshot()})
	})

	manager := jobs.New()
	manager.Register(&round.Sweeper{
		Svc:     rounds,
		Every:   time.Minute,
		MaxIdle: 10 * time.Minute,
		Log:     log,
	})

	return &Server{app: app, cfg: cfg, log: log, manager: manager}, nil
}

// registerConsumers fans settled rounds out to the leaderboard, the metrics
// counters and the live feed.
func registerConsumers(bus *event.Bus, hub *ws.Hub, board leaderboard.Store,
	rtp *monitoring.RTPTracker, log *zap.Logger) {

	bus.Subscribe(event.EventRoundSettled, func(payload interface{}) {
		res, ok := payload.(*event.RoundSettled)
		if !ok {
			return
		}
		if err := board.Record(context.Background(), res.PlayerID, res.Payout-res.Bet); err != nil {
			log.Warn("leaderboard update failed", zap.String("player", res.PlayerID), zap.Error(err))
		}
		monitoring.RoundsTotal.WithLabelValues(res.Game).Inc()
		monitoring.WageredTotal.WithLabelValues(res.Game).Add(float64(res.Bet))
		monitoring.PayoutTotal.WithLabelValues(res.Game).Add(float64(res.Payout))
		monitoring.BalanceUpdates.Inc()
		rtp.Record(res.Game, res.Bet, res.Payout)
		hub.BroadcastJSON(map[string]interface{}{
			"type":   "round_settled",
			"game":   res.Game,
			"bet":    res.Bet,
			"payout": res.Payout,
		})
	})
}

// Start runs the background jobs, the metrics listener and the API listener.
// It blocks until the fiber listener stops.
func (s *Server) Start(ctx context.Context) error {
	go s.manager.Start(ctx)
	go func() {
		if err := monitoring.Serve(":" + s.cfg.MetricsPort); err != nil {
			s.log.Error("metrics listener stopped", zap.Error(err))
		}
	}()
	s.log.Info("listening", zap.String("port", s.cfg.HTTPPort))
	return s.app.Listen(":" + s.cfg.HTTPPort)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
