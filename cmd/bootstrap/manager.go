package bootstrap

import (
	"context"
	"log/slog"

	"little-lemon/internal/pkg/config"
	"little-lemon/internal/usecase/commands"

	"go.uber.org/fx"
)

var ManagerModule = fx.Module("manager",
	fx.Invoke(EnsureManager),
)

// EnsureManager seeds the configured Manager account. It is a no-op without MANAGER_USERNAME.
func EnsureManager(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if cfg.Manager.Username == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := auth.EnsureManager(ctx, commands.RegisterRequest{
				Username: cfg.Manager.Username,
				Password: cfg.Manager.Password,
				Email:    cfg.Manager.Email,
			})
			if err != nil {
				return err
			}
			logger.Info("Manager account ready", "username", cfg.Manager.Username)
			return nil
		},
	})
}
