package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pge/respack"
)

var listCmd = &cobra.Command{
	Use:   "list <pack>",
	Short: "List the entries of a resource pack",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := respack.Open(args[0], flagKey)
	if err != nil {
		return err
	}

	entries := p.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Pack is empty.")
		return nil
	}

	// Calculate column widths
	maxNameLen := len("Name")
	for _, e := range entries {
		maxNameLen = max(maxNameLen, len(e.Name))
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %4s  %-*s  %10s  %10s\n", "ID", maxNameLen, "Name", "Size", "Offset")
	for _, e := range entries {
		fmt.Fprintf(w, "  %4d  %-*s  %10d  %10d\n", e.ID, maxNameLen, e.Name, e.Size, e.Offset)
	}
	return nil
}
