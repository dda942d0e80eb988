// Unset command: clear one parameter's slot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Clear a parameter so gets fail until it is set again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := lookupKey(args[0])
		if err != nil {
			return err
		}
		if err := store.Clear(id); err != nil {
			return fmt.Errorf("unset %s: %w", args[0], err)
		}
		sessionDirty = true
		fmt.Printf("%s unset\n", args[0])
		return nil
	},
}
