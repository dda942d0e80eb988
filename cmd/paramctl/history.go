// History command: list saved snapshot revisions.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List snapshot revisions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		revs, err := backend.Revisions()
		if err != nil {
			return fmt.Errorf("list revisions: %w", err)
		}

		if flagJSON {
			out, err := json.MarshalIndent(revs, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal history: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(revs) == 0 {
			fmt.Println("no snapshots saved")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "REVISION\tSAVED\tVALUES")
		for _, r := range revs {
			fmt.Fprintf(w, "%s\t%s\t%d\n", r.RevisionID, r.SavedAt.Format(time.RFC3339), r.ValueCount)
		}
		return w.Flush()
	},
}
