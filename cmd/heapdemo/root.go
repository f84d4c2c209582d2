package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "HEAPDEMO"

// app holds the state shared by all subcommands.
type app struct {
	config *viper.Viper
	log    Logger
}

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("min", false)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd() *cobra.Command {
	a := &app{config: newConfig()}

	rootCmd := &cobra.Command{
		Use:           "heapdemo",
		Short:         "Demonstrate min- and max-heap operations",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			base, err := newBaseLogger(cmd.ErrOrStderr(), a.config.GetString("log-level"), a.config.GetString("log-format"))
			if err != nil {
				return err
			}
			a.log = newLogger(base, cmd.Name())
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text or json)")
	_ = a.config.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newSortCmd(a))

	return rootCmd
}
