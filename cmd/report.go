package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/salesops/pulse/internal/config"
	"github.com/salesops/pulse/internal/crm"
	"github.com/salesops/pulse/internal/news"
	"github.com/salesops/pulse/internal/report"
	"github.com/salesops/pulse/internal/window"
)

func runReport(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := crm.LoadDir(flagCRMDir)
	if err != nil {
		return fmt.Errorf("loading CRM extracts: %w", err)
	}

	items, err := news.Load(flagNews)
	if err != nil {
		return fmt.Errorf("loading news feed: %w", err)
	}

	rep := report.Assemble(data, items, report.Options{
		Timeframe:  resolveTimeframe(flagTimeframe, cfg),
		Now:        time.Now().UTC(),
		Rules:      cfg.GetRules(),
		Tiers:      cfg.GetTiers(),
		LateStages: cfg.GetLateStages(),
		MaxSignals: cfg.GetMaxSignals(),
		MaxCRMRows: cfg.GetMaxCRMRows(),
	})

	if flagOut == "" {
		return report.Write(os.Stdout, rep)
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOut, err)
	}
	defer f.Close()
	if err := report.Write(f, rep); err != nil {
		return err
	}
	fmt.Printf("Wrote %s report with %d signal(s) and %d open deal(s) to %s\n",
		rep.Timeframe, len(rep.Signals), len(rep.CRM), flagOut)
	return nil
}

// resolveTimeframe prefers the flag over the config value.
func resolveTimeframe(flag string, cfg *config.Config) window.Timeframe {
	if flag != "" {
		return window.Parse(flag)
	}
	return cfg.GetTimeframe()
}

func setupLogging() {
	log.DefaultLogger.Level = log.WarnLevel
	if flagVerbose {
		log.DefaultLogger.Level = log.DebugLevel
	}
	log.DefaultLogger.Writer = &log.ConsoleWriter{Writer: os.Stderr, ColorOutput: true}
}
