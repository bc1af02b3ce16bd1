// Package cmd is the portfolio command line.
//
// Configuration precedence, highest first:
//
//  1. command-line flags (--port, --config)
//  2. PORTFOLIO_<SECTION>_<KEY> environment variables, including ones loaded from .env
//  3. .portfolio.yaml in the working directory, or the file named by --config
//  4. built-in defaults
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with a contact form",
	Long: `portfolio serves a single-page personal portfolio: profile, skills,
experience, projects, certifications, education and a contact form that
delivers messages through EmailJS or SMTP.

Quick Start:
  portfolio serve                 Start the site on :8080
  portfolio export --out dist     Write a static copy for CDN hosting
  portfolio version               Print the build version`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .portfolio.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	viper.BindPFlag("app.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".portfolio")
	}

	config.Bind(viper.GetViper())

	// a missing config file is fine; defaults and env cover everything
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
