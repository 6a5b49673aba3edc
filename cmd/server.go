package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/config"
	"github.com/ziadkadry99/oceanai/internal/contact"
	"github.com/ziadkadry99/oceanai/internal/dashboard"
	"github.com/ziadkadry99/oceanai/internal/db"
	"github.com/ziadkadry99/oceanai/internal/effects"
	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/server"
	"github.com/ziadkadry99/oceanai/internal/site"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the website server",
	Long:  `Starts the OceanAI site with live charts, the chat demo, the contact form and the info pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}, database)

		dash, err := registerAllRoutes(srv, cfg)
		if err != nil {
			return err
		}
		dash.Start()
		defer dash.Stop()

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logrus.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logrus.WithFields(logrus.Fields{
			"version":  Version,
			"port":     cfg.Server.Port,
			"database": database.Path(),
		}).Info("oceanai server starting")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires every feature onto the server router and returns
// the dashboard, whose timers the caller starts.
func registerAllRoutes(srv *server.Server, cfg *config.Config) (*dashboard.Dashboard, error) {
	r := srv.Router()
	database := srv.Database()

	mon, err := buildMonitor(cfg)
	if err != nil {
		return nil, err
	}
	idx, err := buildIndex(context.Background())
	if err != nil {
		return nil, err
	}

	// Info pages
	pages, err := site.Load(site.Content())
	if err != nil {
		return nil, fmt.Errorf("loading pages: %w", err)
	}
	pages.RegisterRoutes(r)

	// Contact form
	contact.NewHandler(contact.NewStore(database)).RegisterRoutes(r)

	// Landing page, charts, facts and chat
	particleCfg := effects.DefaultParticleConfig()
	particleCfg.SpawnEvery = cfg.Intervals.ParticleSpawn
	particleCfg.Lifetime = cfg.Intervals.ParticleLifetime

	dash := dashboard.New(dashboard.Config{
		FactRotation:    cfg.Intervals.FactRotation,
		GalleryRotation: cfg.Intervals.GalleryRotation,
		TypingDelay:     cfg.Chat.TypingDelay,
		ReplyDelay:      cfg.Chat.ReplyDelay,
	}, dashboard.Deps{
		Monitor:   mon,
		Index:     idx,
		Rotator:   facts.NewRotator(facts.Facts, newSource(cfg.Seed, streamFacts)),
		Carousel:  facts.NewCarousel(facts.Gallery),
		Particles: effects.NewParticleField(particleCfg, newSource(cfg.Seed, streamParticles)),
		Responder: buildAnswerer(cfg),
		ChatStore: chat.NewStore(database),
	})
	dash.RegisterRoutes(r)
	return dash, nil
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
