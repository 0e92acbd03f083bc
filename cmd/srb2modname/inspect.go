// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	modname "github.com/woozymasta/srb2modname"
)

func newLumpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lumps <file.wad>",
		Short: "List the lump directory of a WAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read WAD: %w", err)
			}

			lumps, err := modname.ListLumps(data)
			if err != nil {
				return err
			}

			return printLumps(cmd.OutOrStdout(), lumps)
		},
	}
}

// printLumps writes the lump table.
func printLumps(out io.Writer, lumps []modname.LumpEntry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tNAME\tOFFSET\tSIZE")
	for i, l := range lumps {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i, l.Name, l.Offset, l.Size)
	}

	return tw.Flush()
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List supported targets and their letter order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printTargets(cmd.OutOrStdout())
		},
	}
}

// printTargets writes each target with its ranked letters.
func printTargets(out io.Writer) {
	for _, t := range modname.Targets() {
		ranks := t.Ranks()
		letters := make([]modname.Letter, 0, len(ranks))
		for l := range ranks {
			letters = append(letters, l)
		}
		slices.SortFunc(letters, func(a, b modname.Letter) int { return ranks[a] - ranks[b] })

		_, _ = fmt.Fprintf(out, "%-6s %s\n", t, string(letters))
	}
}
