// Get command: print one parameter's canonical text value.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a parameter's current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := lookupKey(args[0])
		if err != nil {
			return err
		}
		text, err := store.GetText(id)
		if err != nil {
			return fmt.Errorf("get %s: %w", args[0], err)
		}
		fmt.Println(text)
		return nil
	},
}
