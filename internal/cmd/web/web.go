// Package web runs the browser-facing Camply service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/camply/camply/internal/platform/config"
	"github.com/camply/camply/internal/platform/otel"
	"github.com/camply/camply/internal/web"
)

// Config holds the web command configuration. Environment values seed the
// defaults; flags override.
type Config struct {
	HTTPAddr            string `env:"CAMPLY_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	IdentityProviderURL string `env:"CAMPLY_WEB_IDENTITY_URL" envDefault:"http://localhost:8081"`
	SessionJWTSecret    string `env:"CAMPLY_WEB_SESSION_SECRET"`
	SessionIssuer       string `env:"CAMPLY_WEB_SESSION_ISSUER"`
	SessionAudience     string `env:"CAMPLY_WEB_SESSION_AUDIENCE"`
	DatabasePath        string `env:"CAMPLY_WEB_DB_PATH" envDefault:"camply-web.db"`
	TrustForwardedProto bool   `env:"CAMPLY_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.IdentityProviderURL, "identity-url", cfg.IdentityProviderURL, "Identity provider base URL")
	fs.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "SQLite database path")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "camply-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		IdentityProviderURL: cfg.IdentityProviderURL,
		SessionJWTSecret:    cfg.SessionJWTSecret,
		SessionIssuer:       cfg.SessionIssuer,
		SessionAudience:     cfg.SessionAudience,
		DatabasePath:        cfg.DatabasePath,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer func() {
		if err := server.Close(); err != nil {
			log.Printf("close web server: %v", err)
		}
	}()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
