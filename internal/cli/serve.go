package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/internal/server"
	"github.com/matzehuels/tilegrid/pkg/config"
	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/observability"
	"github.com/matzehuels/tilegrid/pkg/store"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		serverFlags config.ServerConfig
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket API",
		Long: `Run the HTTP API.

Layouts are cached in Redis when [cache.redis] is configured and in the file
cache otherwise. Solved layouts are stored in MongoDB when a Mongo URI is set,
in a directory with --store-dir, and in memory otherwise.

Routes:
  GET    /healthz
  POST   /v1/layouts
  GET    /v1/layouts/{id}
  DELETE /v1/layouts/{id}
  POST   /v1/render/{format}
  GET    /v1/stream          (websocket)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = serverFlags.Addr
			}
			if flags.Changed("mongo-uri") {
				cfg.Server.MongoURI = serverFlags.MongoURI
			}
			if flags.Changed("mongo-db") {
				cfg.Server.MongoDatabase = serverFlags.MongoDatabase
			}
			if flags.Changed("store-dir") {
				cfg.Server.StoreDir = serverFlags.StoreDir
			}
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&serverFlags.Addr, "addr", config.DefaultServerAddr, "listen address")
	cmd.Flags().StringVar(&serverFlags.MongoURI, "mongo-uri", "", "MongoDB URI for the layout store")
	cmd.Flags().StringVar(&serverFlags.MongoDatabase, "mongo-db", "tilegrid", "MongoDB database")
	cmd.Flags().StringVar(&serverFlags.StoreDir, "store-dir", "", "directory for the file layout store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *config.Config, noCache bool) error {
	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	layouts, err := c.newStore(ctx, cfg.Server)
	if err != nil {
		return err
	}
	defer layouts.Close()

	stats := observability.NewCounters(observability.NewLogHooks(c.Logger))
	observability.SetAll(stats)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = config.DefaultServerAddr
	}
	printInfo("Serving on %s", StyleValue.Render(addr))
	srv := server.New(runner, layouts, c.Logger)
	srv.Stats = stats
	return srv.ListenAndServe(ctx, addr)
}

// newStore picks MongoDB, a directory or memory, in that order.
func (c *CLI) newStore(ctx context.Context, sc config.ServerConfig) (store.Store, error) {
	switch {
	case sc.MongoURI != "":
		s, err := store.NewMongoStore(ctx, store.MongoOptions{
			URI:      sc.MongoURI,
			Database: sc.MongoDatabase,
			TTL:      store.DefaultTTL,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open mongo store")
		}
		c.Logger.Info("layout store", "backend", "mongo", "database", sc.MongoDatabase)
		return s, nil
	case sc.StoreDir != "":
		s, err := store.NewFileStore(sc.StoreDir, store.DefaultTTL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open file store")
		}
		c.Logger.Info("layout store", "backend", "file", "dir", s.Path())
		return s, nil
	default:
		c.Logger.Info("layout store", "backend", "memory")
		return store.NewMemoryStore(store.DefaultTTL), nil
	}
}
