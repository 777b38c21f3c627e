package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gochip8 [command]",
	Short: "CHIP-8 emulator using Go",
	Long: "An emulator for the CHIP-8 virtual machine, the interpreted " +
		"instruction set that let games run identically across the 8-bit " +
		"systems of the late 1970s.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run a ROM with `gochip8 start path/to/rom`")
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.gochip8.yaml)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".gochip8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gochip8")
	}

	viper.SetEnvPrefix("gochip8")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
