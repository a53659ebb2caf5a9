package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// fieldsCmd prints the sink field projection and warehouse path of a
// table definition, the pieces a pipeline needs to read or write the
// table's files.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "print the sink fields and warehouse path for a table definition",
	RunE: func(cmd *cobra.Command, _ []string) error {
		descriptor, err := loadDescriptor()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fields: %s\n", strings.Join(descriptor.ToFields(), ", "))
		fmt.Fprintf(out, "path: %s\n", descriptor.FilesystemPath())
		if descriptor.IsPartitioned() {
			fmt.Fprintf(out, "partitioned by: %s\n", strings.Join(descriptor.PartitionKeys(), ", "))
		}
		return nil
	},
}
