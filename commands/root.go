package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/supplymesh"
	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/logging"
	"github.com/hupe1980/supplymesh/metrics"
	"github.com/hupe1980/supplymesh/policy"
)

var (
	policyFile string
	seed       int64
	logLevel   string

	cfgRegion   string
	cfgIndustry string
	cfgCurrency string
	cfgShipping []string
	cfgNodes    int
	cfgRisk     string
)

var rootCmd = &cobra.Command{
	Use:   "supplymesh",
	Short: "Supply chain network simulation and analysis",
	Long: `Supplymesh synthesizes a supply chain network from a configuration,
perturbs it over time and analyzes it with four agents: network health,
disruption scenarios, mitigation strategies and ESG impact.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy", "", "YAML policy override file (defaults apply when omitted)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Fixed random seed for reproducible runs (0 = time-derived)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().StringVar(&cfgRegion, "region", string(core.RegionAsiaPacific), "Network region")
	rootCmd.PersistentFlags().StringVar(&cfgIndustry, "industry", string(core.IndustryElectronics), "Industry vertical")
	rootCmd.PersistentFlags().StringVar(&cfgCurrency, "currency", string(core.CurrencyUSD), "Reporting currency")
	rootCmd.PersistentFlags().StringSliceVar(&cfgShipping, "shipping", []string{"Sea", "Air", "Rail"}, "Shipping methods")
	rootCmd.PersistentFlags().IntVar(&cfgNodes, "nodes", 6, "Node count (3-12)")
	rootCmd.PersistentFlags().StringVar(&cfgRisk, "risk", string(core.RiskLow), "Risk profile: Low, Medium, High")
}

// loadPolicy resolves the effective policy from --policy, falling back to the
// defaults.
func loadPolicy() (policy.Policy, error) {
	if policyFile == "" {
		return policy.Default(), nil
	}
	return policy.Load(policyFile)
}

// parseLogLevel maps the --log-level flag onto a logging level.
func parseLogLevel() (logging.LogLevel, error) {
	switch strings.ToLower(logLevel) {
	case "debug":
		return logging.LogLevelDebug, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "warn":
		return logging.LogLevelWarn, nil
	case "error":
		return logging.LogLevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", logLevel)
	}
}

// configurationFromFlags assembles the network configuration from the
// persistent flags. Validation happens when the configuration is submitted.
func configurationFromFlags() core.Configuration {
	methods := make([]core.ShippingMethod, 0, len(cfgShipping))
	for _, m := range cfgShipping {
		methods = append(methods, core.ShippingMethod(strings.TrimSpace(m)))
	}
	return core.Configuration{
		Region:          core.Region(cfgRegion),
		Industry:        core.Industry(cfgIndustry),
		Currency:        core.Currency(cfgCurrency),
		ShippingMethods: methods,
		NodeCount:       cfgNodes,
		RiskProfile:     core.RiskProfile(cfgRisk),
	}
}

// newMesh wires a mesh from the persistent flags.
func newMesh(reg *metrics.Registry, logger logging.Logger) (*supplymesh.Mesh, error) {
	p, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	return supplymesh.New(func(o *supplymesh.Options) {
		o.Policy = p
		if logger != nil {
			o.Logger = logger
		}
		o.Metrics = reg
		o.Seed = seed
	}), nil
}
