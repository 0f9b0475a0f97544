package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/cache"
	"github.com/matzehuels/tilegrid/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. It clears Redis
// when [cache.redis] is configured and the cache directory otherwise. On
// Redis only keys under the prefix and cache.namespace are removed.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var expired bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached layouts and artifacts",
		Long: `Clear cached layouts and artifacts.

With --expired only entries past their TTL are removed from the cache
directory. Redis expires keys on its own, so --expired is a no-op there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Cache.Redis.Addr != "" {
				if expired {
					printInfo("Redis expires entries itself; nothing to prune")
					return nil
				}
				return c.clearRedis(cmd.Context(), cfg)
			}

			dir, err := cacheDir(cfg)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			sweep, what := fc.Clear, "cached"
			if expired {
				sweep, what = fc.Prune, "expired"
			}
			count, err := sweep()
			if err != nil {
				return err
			}

			printSuccess("Cleared %d %s entries", count, what)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&expired, "expired", false, "only remove entries past their TTL")
	return cmd
}

func (c *CLI) clearRedis(ctx context.Context, cfg *config.Config) error {
	rc, err := cache.NewRedisCache(ctx, redisOptions(cfg.Cache.Redis))
	if err != nil {
		return err
	}
	defer rc.Close()

	count, err := rc.ClearScope(ctx, keyScope(cfg))
	if err != nil {
		return err
	}
	printSuccess("Cleared %d cached entries", count)
	printDetail("Redis: %s", cfg.Cache.Redis.Addr)
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			dir, err := cacheDir(cfg)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
