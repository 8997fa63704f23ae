package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rishi-212005/portfolio-server/internal/auth"
	"github.com/rishi-212005/portfolio-server/internal/chat"
	"github.com/rishi-212005/portfolio-server/internal/config"
	"github.com/rishi-212005/portfolio-server/internal/content"
	"github.com/rishi-212005/portfolio-server/internal/db"
	"github.com/rishi-212005/portfolio-server/internal/editmode"
	"github.com/rishi-212005/portfolio-server/internal/inbox"
	"github.com/rishi-212005/portfolio-server/internal/sections"
	"github.com/rishi-212005/portfolio-server/internal/server"
)

var (
	serverPort     int
	serverAllowAll bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the portfolio API server",
	Long:  `Starts the portfolio API server with content, sections, inbox, auth and chat endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverPort != 0 {
			cfg.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		deps, err := buildDeps(cmd.Context(), cfg, database)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AllowedOrigins: cfg.AllowedOrigins,
			AllowAll:       serverAllowAll,
		}, database, deps)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "portfolio server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.Database)
		fmt.Fprintf(os.Stderr, "  Chat engine: %s\n", deps.Engine.Name())
		if verbose {
			fmt.Fprintf(os.Stderr, "  Admin email: %s\n", cfg.AdminEmail)
			fmt.Fprintf(os.Stderr, "  Allowed origins: %v\n", cfg.AllowedOrigins)
			fmt.Fprintf(os.Stderr, "  Sections: %d, editable fields: %d\n",
				len(deps.Sections.Names()), len(deps.Fields.Fields()))
		}

		return srv.Start()
	},
}

// buildDeps wires every feature component on top of the shared content store.
func buildDeps(ctx context.Context, cfg *config.Config, database *db.DB) (server.Deps, error) {
	store := content.NewStore(database)
	gate := auth.NewGate(ctx, store, cfg.AdminEmail, cfg.AdminPassword)
	session := editmode.NewSession(gate)

	engine, err := buildEngine(cfg)
	if err != nil {
		return server.Deps{}, err
	}

	return server.Deps{
		Gate:     gate,
		Session:  session,
		Fields:   editmode.NewRegistry(session, store, editmode.DefaultFields()),
		Sections: sections.NewRegistry(store),
		Inbox:    inbox.NewStore(store),
		Engine:   engine,
	}, nil
}

func buildEngine(cfg *config.Config) (chat.Engine, error) {
	kb := chat.DefaultKnowledgeBase()
	switch cfg.ChatEngine {
	case config.EngineLocal:
		return chat.NewLocalEngine(kb, time.Duration(cfg.ChatDelayMS)*time.Millisecond), nil
	case config.EngineRemote:
		return chat.NewRemoteEngine(cfg.ChatGatewayURL, cfg.ChatAPIKey, cfg.ChatModel, kb), nil
	default:
		return nil, fmt.Errorf("unknown chat engine %q", cfg.ChatEngine)
	}
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Override the configured listen port")
	serverCmd.Flags().BoolVar(&serverAllowAll, "allow-all-origins", false, "Allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serverCmd)
}
