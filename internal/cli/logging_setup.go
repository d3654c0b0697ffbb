package cli

import (
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/rshade/more/internal/config"
)

// setupLogging builds the stderr logger from cfg, tags it with a run id and
// attaches it to the command context so the pager can reach it.
func setupLogging(cmd *cobra.Command, cfg config.LoggingConfig) {
	base := config.NewLogger(cmd.ErrOrStderr(), cfg)
	logger = config.ComponentLogger(base, "cli").
		With().
		Str("run_id", ulid.Make().String()).
		Logger()

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
}
