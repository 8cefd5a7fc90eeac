package main

import (
	"context"
	"flag"
	"os"

	"papersync/internal/modkit"
	"papersync/internal/modkit/module"
	"papersync/internal/platform/config"
	"papersync/internal/platform/logger"

	stmod "papersync/internal/services/status/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	fDryRun := flag.Bool("dry-run", false, "log intended issue updates without touching the tracker")
	flag.Parse()

	// surface the flag to the module's FromConfig
	mustSetEnv("PAPERSYNC_DRY_RUN", map[bool]string{true: "1", false: ""}[*fDryRun])

	root := config.New()
	l := logger.Get()

	deps := modkit.Deps{Cfg: root, Log: *l}

	m := stmod.New(deps)
	module.Register(m.Name(), m.Ports())
	runner := module.MustPortsOf[stmod.Ports](m).Runner

	sum, err := runner.Run(context.Background())
	if err != nil {
		l.Fatal().Err(err).Msg("status run failed")
	}
	l.Info().
		Str("run_id", sum.RunID).
		Int("rows", sum.Rows).
		Int("changed", sum.Changed).
		Int("unchanged", sum.Unchanged).
		Int("missing", sum.Missing).
		Int("failed", sum.Failed).
		Bool("dry_run", sum.DryRun).
		Msg("status run complete")
}
