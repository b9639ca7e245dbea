package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/supplymesh/agent"
	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/logging"
	"github.com/hupe1980/supplymesh/metrics"
	"github.com/hupe1980/supplymesh/store"
)

var (
	tickInterval time.Duration
	analyzeEvery time.Duration
	metricsAddr  string
	runLogFormat string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the live simulation",
	Long: `Synthesize a network from the configuration flags, perturb it on a fixed
cadence and periodically run the analysis agents against it. Prometheus
metrics are served on --metrics-addr. Stops on SIGINT/SIGTERM.

Examples:
  supplymesh run --nodes 8 --risk High --seed 42
  supplymesh run --region Europe --industry Automotive --interval 2s`,
	RunE: runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().DurationVar(&tickInterval, "interval", 4*time.Second, "Perturbation tick interval")
	runCmd.Flags().DurationVar(&analyzeEvery, "analyze-every", 20*time.Second, "Cadence for the periodic agent runs")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9091", "Prometheus metrics listen address (empty disables)")
	runCmd.Flags().StringVar(&runLogFormat, "log-format", "json", "Log format: json, text")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	level, err := parseLogLevel()
	if err != nil {
		return err
	}
	logger := logging.NewSlogLogger(level, runLogFormat, false)
	reg := metrics.NewRegistry()

	mesh, err := newMesh(reg, logger)
	if err != nil {
		return err
	}

	version, err := mesh.PutConfiguration(configurationFromFlags())
	if err != nil {
		return err
	}
	logger.Info("Simulation started", "state_version", version, "tick_interval", tickInterval.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "error", err.Error())
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("Metrics server listening", "addr", metricsAddr)
	}

	ticker := store.NewTicker(mesh.Store(), tickInterval, logger.WithComponent("ticker"))
	if err := ticker.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = ticker.Stop() }()

	analyze := time.NewTicker(analyzeEvery)
	defer analyze.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Simulation stopped")
			return nil
		case <-analyze.C:
			runAgents(mesh, logger)
		}
	}
}

// runAgents runs the full agent sweep and logs the headline of each report.
func runAgents(mesh meshRunner, logger *logging.SimLogger) {
	if env, err := mesh.RunInfo(); err == nil {
		report := env.Payload.(agent.InfoReport)
		logger.Info("Network health",
			"label", string(report.Summary.Label),
			"healthy", report.Summary.HealthyCount,
			"warning", report.Summary.WarningCount,
			"critical", report.Summary.CriticalCount,
			"anomalies", len(report.Anomalies))
	}
	if env, err := mesh.RunStrategy(); err == nil {
		report := env.Payload.(agent.StrategyReport)
		top := ""
		if len(report.Strategies) > 0 {
			top = report.Strategies[0].Name
		}
		logger.Info("Strategy ranking",
			"health_score", fmt.Sprintf("%.1f", report.HealthScore),
			"dominant_weakness", string(report.DominantWeakness),
			"top_strategy", top)
	}
	if env, err := mesh.RunImpact(); err == nil {
		report := env.Payload.(agent.ESGReport)
		logger.Info("ESG assessment",
			"environmental", fmt.Sprintf("%.1f", report.Environmental.Score),
			"social", fmt.Sprintf("%.1f", report.Social.Score),
			"governance", fmt.Sprintf("%.1f", report.Governance.Score),
			"recommendations", len(report.Recommendations))
	}
}

// meshRunner is the slice of the façade the sweep needs; it keeps runAgents
// testable without a live store.
type meshRunner interface {
	RunInfo() (core.ResultEnvelope, error)
	RunStrategy() (core.ResultEnvelope, error)
	RunImpact() (core.ResultEnvelope, error)
}
