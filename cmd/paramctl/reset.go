// Reset command: restore catalog defaults.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore a parameter (or every parameter) to its catalog default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			store.SeedDefaults()
			sessionDirty = true
			fmt.Printf("%d parameters reset to defaults\n", store.Table().Len())
			return nil
		}

		id, err := lookupKey(args[0])
		if err != nil {
			return err
		}
		if err := store.SeedDefault(id); err != nil {
			return fmt.Errorf("reset %s: %w", args[0], err)
		}
		sessionDirty = true

		text, err := store.GetText(id)
		if err != nil {
			return fmt.Errorf("read back %s: %w", args[0], err)
		}
		fmt.Printf("%s = %s\n", args[0], text)
		return nil
	},
}
