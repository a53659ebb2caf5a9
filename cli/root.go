package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datazip-inc/hivetap/constants"
	"github.com/datazip-inc/hivetap/types"
	"github.com/datazip-inc/hivetap/utils/logger"
)

var (
	configPath string
	debugMode  bool

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hivetap",
	Short: "translate table definitions between metastore and row-stream shapes",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		viper.Set("DEBUG_MODE", debugMode)
		logger.Init()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	commands = append(commands, describeCmd, fieldsCmd)
	RootCmd.AddCommand(commands...)
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "not-set", "(Required) Path to the table definition JSON")
	RootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "", false, "(Optional) Enable debug logging")
}

// loadDescriptor reads the --config file and builds the descriptor.
func loadDescriptor() (*types.TableDescriptor, error) {
	if configPath == "not-set" {
		return nil, fmt.Errorf("--config not provided. Use 'hivetap --help' to display usage guide")
	}

	config, err := types.LoadTableConfig(configPath)
	if err != nil {
		return nil, err
	}
	return config.Descriptor()
}
