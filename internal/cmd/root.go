package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/triad/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "triad",
	Short: "Stable three-person team matching",
	Long: `Triad partitions a population into teams of three. Every individual
ranks all others; free individuals propose to pairs in their own order of
preference and a team forms when both invitees prefer it to the team they
are in. The run ends when nobody free has a pair left to try.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/triad/config.yaml)")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TRIAD")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TRIAD_RUN_POPULATION for run.population
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
