package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/config"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/geoip"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/logger"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/report"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/runner"
)

var version = "dev"

// rootCmd runs one full connectivity pass. There are no flags: every
// tunable comes from the environment (see internal/config).
var rootCmd = &cobra.Command{
	Use:   "intune-connectivity",
	Short: "Check connectivity to the endpoints required for Intune device enrollment",
	Long: `Check connectivity to the endpoints required for Intune device enrollment.

  Fetches the current list of required Microsoft Endpoint Manager network
  endpoints, detects whether this machine egresses directly or through the
  system proxy, probes every endpoint, and prints a pass/fail report with
  remediation guidance.`,
	Version: version,
	Args:    cobra.NoArgs,
	// A fetch failure is an operational condition, not a usage mistake;
	// Execute prints it once without the usage text.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Setup(cfg.LogLevel)

		geoDB, err := geoip.Open(cfg.GeoIPPath)
		if err != nil {
			slog.Debug("geoip database unavailable, skipping country annotations", "path", cfg.GeoIPPath)
			geoDB = nil
		}
		defer geoDB.Close()

		run, err := runner.New(cfg).Execute(cmd.Context())
		if err != nil {
			return err
		}

		report.NewPrinter(cmd.OutOrStdout(), geoDB).Print(run)

		// Failed endpoints are diagnostic findings, already reported with
		// remediation guidance; they surface as the exit code only.
		anyFailures = run.AnyFailures
		return nil
	},
}

var anyFailures bool

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if anyFailures {
		os.Exit(1)
	}
}
