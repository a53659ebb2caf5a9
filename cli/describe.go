package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/datazip-inc/hivetap/utils/logger"
)

// describeCmd renders the metastore Table object for a table definition.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "print the metastore table object for a table definition",
	RunE: func(cmd *cobra.Command, _ []string) error {
		descriptor, err := loadDescriptor()
		if err != nil {
			return err
		}
		logger.Debugf("loaded descriptor: %s", descriptor)

		table := descriptor.ToMetastoreTable()
		raw, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize metastore table: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}
