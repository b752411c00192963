package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BobbingAlong/twitter-watch/internal/utils"
	"github.com/BobbingAlong/twitter-watch/pkg/report"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "twitter-watch",
	Short: "Report generator for tracked Twitter account changes.",
	Long: `twitter-watch renders Markdown reports of detected screen name changes
and account suspensions from the append-only data.csv logs kept in this
repository.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.twitter-watch.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".twitter-watch")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// A missing config file is fine; the defaults below apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}

	viper.SetDefault("report.dates_limit", report.DefaultDatesLimit)
	viper.SetDefault("report.followers_cutoff", report.DefaultFollowersCutoff)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// reportConfig freezes the viper-backed settings into the config value the
// pipeline takes, so nothing below cmd/ reads ambient state.
func reportConfig() report.Config {
	cfg := report.DefaultConfig()
	cfg.DatesLimit = viper.GetInt("report.dates_limit")
	cfg.FollowersCutoff = viper.GetUint64("report.followers_cutoff")
	return cfg
}
