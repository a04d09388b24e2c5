package cmd

import (
	"fmt"
	"os"

	"github.com/gnomegl/pwncheck/pkg/hibp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "pwncheck",
	Short: "pwncheck - check password lists against the Have I Been Pwned corpus",
	Long: `pwncheck checks a file of candidate passwords against the Have I Been
Pwned breach corpus using the k-anonymity range API:
- Only the first 5 characters of each password's SHA-1 hash ever leave
  the machine; the exact match is resolved locally
- Each distinct hash prefix is fetched at most once per run and served
  from an in-memory cache afterwards
- New range queries are spaced out to respect the service's rate limit
- Results can be exported to CSV, with passwords included only for
  entries already confirmed breached`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pwncheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the progress bar and non-essential output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pwncheck")
	}

	viper.SetDefault("api_url", hibp.DefaultBaseURL)
	viper.SetDefault("user_agent", hibp.DefaultUserAgent)

	viper.SetEnvPrefix("PWNCHECK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
