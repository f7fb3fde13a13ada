package util

import (
	"github.com/PIXRA-Network/typeconv/lib/dictionary"
	"github.com/PIXRA-Network/typeconv/network/common"
	"github.com/PIXRA-Network/typeconv/network/convert"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

var Logger = logger.GetLogger("cmd")

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupConverterFlags adds the flags shared by every command that converts data
func SetupConverterFlags(cmd *cobra.Command) {
	key := "data-dir"
	cmd.PersistentFlags().String(key, "data/palettes", WrapString("Directory with one palette file per protocol (<protocol>.yaml or <protocol>.yaml.zst)"))

	key = "protocol"
	cmd.PersistentFlags().Int(key, 671, WrapString("The protocol version to convert for"))

	key = "preload"
	cmd.PersistentFlags().String(key, "", WrapString("Comma-separated list of protocol versions whose converters are created at startup"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("typeconv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetConverterConfig reads the converter configuration from viper
func GetConverterConfig() (*common.ConverterConfig, error) {
	protocols, err := common.ParseProtocols(viper.GetString("preload"))
	if err != nil {
		return nil, err
	}
	conf := &common.ConverterConfig{
		DataDir:         viper.GetString("data-dir"),
		Protocols:       protocols,
		DefaultProtocol: viper.GetInt("protocol"),
		LogLevel:        viper.GetString("log-level"),
	}
	return conf, conf.Validate()
}

// SetupRegistry binds the flags of cmd, configures logging and creates a
// registry with the configured protocols preloaded
func SetupRegistry(cmd *cobra.Command) (*convert.Registry, *common.ConverterConfig, error) {
	if err := BindCommandFlags(cmd); err != nil {
		return nil, nil, err
	}
	conf, err := GetConverterConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := common.InitLoggers(*conf); err != nil {
		return nil, nil, err
	}
	Logger.Debugf("configuration:%s", conf.String())

	registry := convert.NewRegistry(dictionary.DirLoader(conf.DataDir))
	if err := registry.Preload(conf.Protocols...); err != nil {
		return nil, nil, err
	}
	return registry, conf, nil
}
