package cli

import (
	"github.com/spf13/cobra"

	"github.com/solardome/layout-gen/internal/layoutgen"
)

func NewScaffoldCmd() *cobra.Command {
	var (
		uiInfoFile string
		opts       layoutgen.ScaffoldOptions
	)
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Print a grid SVG template for the matrix positions of a UI info file",
		Long: `Print a grid SVG template for the matrix positions of a UI info file.

Save the output as ` + layoutgen.TemplateFile + ` in a directory and pass it
with --build-scripts to draw layouts for keyboards without a template.`,
		Args: cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			info, _, err := layoutgen.LoadUIInfo(uiInfoFile)
			if err != nil {
				return err
			}
			return layoutgen.Scaffold(cc.OutOrStdout(), info.Mappings.MatrixPositions, opts)
		},
	}
	cmd.Flags().StringVar(&uiInfoFile, "ui-info-file", "", "Path to the firmware UI info JSON")
	cmd.Flags().IntVar(&opts.Columns, "columns", 14, "Keys per row")
	cmd.Flags().IntVar(&opts.KeySize, "key-size", 54, "Key pitch in pixels")
	if err := cmd.MarkFlagRequired("ui-info-file"); err != nil {
		panic(err)
	}
	return cmd
}
