package metrics

import (
	"github.com/PIXRA-Network/typeconv/cmd/util"
	"github.com/spf13/cobra"
	"os"
)

var (
	// MetricsCmd represents the metrics command
	MetricsCmd = &cobra.Command{
		Use:   "metrics",
		Short: "Print the converter metrics in Prometheus text format",
		Long: util.WrapString(`Creates the converters of the default protocol and of every protocol passed ` +
			`with --preload, then prints the metrics of the registry. Useful to check that all palettes load.`),
		RunE: run,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	util.SetupConverterFlags(MetricsCmd)
}

func run(cmd *cobra.Command, _ []string) error {
	registry, conf, err := util.SetupRegistry(cmd)
	if err != nil {
		return err
	}
	if _, err := registry.Get(conf.DefaultProtocol); err != nil {
		return err
	}
	registry.WriteMetrics(os.Stdout)
	return nil
}
