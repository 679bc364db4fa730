package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solardome/layout-gen/internal/keycode"
)

func NewKeycodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keycodes",
		Short: "Print the keycode label table",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			w := cc.OutOrStdout()
			for _, c := range keycode.Codes() {
				if _, err := fmt.Fprintf(w, "0x%02X\t%s\n", c, keycode.Lookup(int(c))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
