// Set command: parse, validate, and store one parameter value.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a parameter from its text representation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := lookupKey(args[0])
		if err != nil {
			return err
		}
		if err := store.SetText(id, args[1]); err != nil {
			return fmt.Errorf("set %s: %w", args[0], err)
		}
		sessionDirty = true

		// Echo the committed canonical form, which may differ from the
		// input ("37.5" stores as "37.50").
		text, err := store.GetText(id)
		if err != nil {
			return fmt.Errorf("read back %s: %w", args[0], err)
		}
		fmt.Printf("%s = %s\n", args[0], text)
		return nil
	},
}
