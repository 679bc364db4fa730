package cli

import (
	"github.com/spf13/cobra"

	"github.com/solardome/layout-gen/internal/layoutgen"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the UI info document",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			b, err := layoutgen.UIInfoSchema()
			if err != nil {
				return err
			}
			_, err = cc.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}
}
