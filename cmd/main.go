package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"SiteCMS/internal/config"
	"SiteCMS/internal/db"
	"SiteCMS/internal/handlers"
	"SiteCMS/internal/models"
	"SiteCMS/internal/server"
	"SiteCMS/internal/service"
	"SiteCMS/internal/sessions"
	"SiteCMS/internal/store"
	"SiteCMS/web"

	"github.com/spf13/cobra"
)

// configFile: значение флага --config.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sitecms",
	Short: "Site with an editable main/about page and an admin panel",
	Args:  cobra.NoArgs,
	// без подкоманды работает как serve
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Prepare the database and start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create tables and seed the first admin and default content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, d, err := setup()
		if err != nil {
			return err
		}
		defer d.Close()
		if err := d.Bootstrap(cmd.Context(), cfg.Seed); err != nil {
			return err
		}
		fmt.Println("database ready")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml/json/toml); env and .env are always read")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(addAdminCmd)
}

// setup читает конфиг и открывает базу.
func setup() (config.Config, *db.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	models.BcryptCost = cfg.BcryptCost

	d, err := db.Open(cfg.Database)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, d, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, d, err := setup()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Boot: preparing database")
	if err := d.Bootstrap(ctx, cfg.Seed); err != nil {
		return err
	}
	if cfg.Session.Secret == config.DevSessionSecret && cfg.Session.Store == config.SessionStoreCookie {
		log.Println("WARNING: SESSION_SECRET is the development default")
	}

	sm, err := sessions.New(cfg.Session, d)
	if err != nil {
		return err
	}
	views, err := handlers.NewViews(web.FS)
	if err != nil {
		return err
	}

	admins := store.NewAdminStore(d)
	h := &handlers.Handlers{
		Auth:     service.NewAuthenticator(admins),
		Content:  service.NewContentService(store.NewContentStore(d)),
		Admins:   service.NewAdminService(admins),
		Sessions: sm,
		Views:    views,
	}

	router := server.NewRouter(h, server.Options{
		MetricsEnabled: cfg.MetricsEnabled,
		Debug:          cfg.Debug,
		LoginRateLimit: cfg.LoginRateLimit,
	})
	return server.Run(ctx, cfg.Addr(), router)
}
