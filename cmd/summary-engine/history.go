// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/summary-engine/internal/archive"
	"github.com/pdiddy/summary-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded summarize and think runs",
	Long: `History lists past pipeline runs from the archive database, newest
first. Filter by workflow with --workflow and cap the row count with
--limit.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	workflow, _ := cmd.Flags().GetString("workflow")
	if workflow != "" && workflow != string(types.WorkflowSummarize) && workflow != string(types.WorkflowThink) {
		return fmt.Errorf("unknown workflow %q: use summarize or think", workflow)
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.History(context.Background(), types.Workflow(workflow), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(r.Workflow),
			truncate(strings.Join(r.Sources, ", "), 50),
			r.Model,
			r.OutputPath,
		})
	}
	fmt.Println(renderTable(
		[]string{"Date", "Workflow", "Sources", "Model", "Output"},
		rows,
	))
	fmt.Printf("\n%d runs\n", len(records))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	historyCmd.Flags().String("workflow", "", "filter by workflow: summarize or think")
	historyCmd.Flags().Int("limit", 0, "maximum number of rows (default: 20)")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
