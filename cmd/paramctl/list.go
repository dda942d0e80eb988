// List command: show the whole catalog with current values.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parambank/pkg/params"
)

// listEntry is the JSON output shape for one catalog entry.
type listEntry struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Size    int    `json:"size"`
	Storage string `json:"storage"`
	Set     bool   `json:"set"`
	Value   string `json:"value,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every catalog parameter and its current value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := store.Table()
		entries := make([]listEntry, 0, table.Len())
		for i := 0; i < table.Len(); i++ {
			id := params.ID(i)
			h, err := table.Handler(id)
			if err != nil {
				return err
			}
			e := listEntry{
				Key:     h.Key(),
				Name:    h.Name(),
				Size:    h.Size(),
				Storage: h.Storage().String(),
				Set:     store.Has(id),
			}
			if e.Set {
				text, err := store.GetText(id)
				switch {
				case errors.Is(err, params.ErrMissingHook):
					e.Value = "(no text form)"
				case err != nil:
					return fmt.Errorf("render %s: %w", h.Key(), err)
				default:
					e.Value = text
				}
			}
			entries = append(entries, e)
		}

		if flagJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal list: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tSIZE\tSTORAGE\tVALUE")
		for _, e := range entries {
			value := e.Value
			if !e.Set {
				value = "(unset)"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.Key, e.Name, e.Size, e.Storage, value)
		}
		return w.Flush()
	},
}
