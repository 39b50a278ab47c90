package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Tienda/internal/catalog"
	"Tienda/internal/config"
	"Tienda/internal/storefront"
	"Tienda/internal/web"
	"Tienda/pkg/kit"
)

const service = "storefront"

type flags struct {
	configPath  string
	catalogPath string
	envFile     string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          service,
		Short:        "Storefront web backend serving HTML fragments for the shop UI",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file (default: ./config.yaml if present)")
	cmd.Flags().StringVar(&f.catalogPath, "catalog", "", "path to a YAML catalog file, overrides catalog.file")
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded before reading config")

	return cmd
}

func run(ctx context.Context, f flags) error {
	if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", f.envFile, err)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.catalogPath != "" {
		cfg.Catalog.File = f.catalogPath
	}

	log := kit.NewLogger(service, cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	snapshot, err := loadCatalog(cfg.Catalog.File)
	if err != nil {
		log.Error("load catalog failed", zap.Error(err))
		return err
	}

	renderer, err := storefront.NewRenderer(web.Templates(), storefront.RendererOptions{
		Currency: cfg.Featured.Currency,
	})
	if err != nil {
		log.Error("init renderer failed", zap.Error(err))
		return err
	}

	s := &storefront.Server{
		Catalog:  snapshot,
		Renderer: renderer,
		Featured: storefront.FeaturedConfig{
			Count: cfg.Featured.Count,
			Price: cfg.Featured.PriceDecimal(),
		},
		SuggestionLimit: cfg.Catalog.SuggestionLimit,
		CartLimitPerMin: cfg.Cart.LimitPerMin,
		Log:             log,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.Metrics.Enabled && cfg.Metrics.Token == "" {
		log.Warn("metrics enabled without METRICS_TOKEN, /metrics will answer 403")
	}

	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		Static:         web.Static(),
	})

	log.Info("catalog loaded", zap.Int("items", snapshot.Len()), zap.String("file", cfg.Catalog.File))

	if err := kit.RunHTTPServer(ctx, cfg.Server.Addr(), h, log, kit.ServerOptions{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}); err != nil {
		log.Error("http server stopped", zap.Error(err))
		return err
	}
	return nil
}

func loadCatalog(path string) (*catalog.Snapshot, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
