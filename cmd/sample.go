package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filegrid/internal/dataset"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in rows as a data file",
	Long: `Print the built-in sample rows as a TOML data file. The output can be
edited and passed back with --data or as the data-file argument.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := dataset.Encode(dataset.SampleRows())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
