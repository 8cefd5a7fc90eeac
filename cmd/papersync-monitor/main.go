package main

import (
	"context"
	"flag"
	"os"

	"papersync/internal/modkit"
	"papersync/internal/modkit/module"
	"papersync/internal/platform/config"
	"papersync/internal/platform/logger"

	monmod "papersync/internal/services/monitor/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	fDryRun := flag.Bool("dry-run", false, "log intended issue creations without touching the tracker")
	flag.Parse()

	// surface the flag to the module's FromConfig
	mustSetEnv("PAPERSYNC_DRY_RUN", map[bool]string{true: "1", false: ""}[*fDryRun])

	root := config.New()
	l := logger.Get()

	deps := modkit.Deps{Cfg: root, Log: *l}

	m := monmod.New(deps)
	module.Register(m.Name(), m.Ports())
	runner := module.MustPortsOf[monmod.Ports](m).Runner

	sum, err := runner.Run(context.Background())
	if err != nil {
		l.Fatal().Err(err).Msg("monitor run failed")
	}
	l.Info().
		Str("run_id", sum.RunID).
		Int("rows", sum.Rows).
		Int("created", sum.Created).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Bool("dry_run", sum.DryRun).
		Msg("monitor run complete")
}
