// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

// Command srb2modname derives a standardized release file name for SRB2,
// SRB2Kart and Ring Racers mods from their WAD or PK3 content.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := log.New(os.Stderr, "srb2modname: ", 0)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal(err)
	}

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd(cfg Config, logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "srb2modname",
		Short: "Name SRB2 mod files by their content",
		Long: `Inspect a WAD or PK3 mod and print the standardized file name
"<letters>_<name>_v<version>.<ext>" with the reasons for every letter.

Environment:
  SRB2MODNAME_TARGET       default target (srb2, srb2k, drrr)
  SRB2MODNAME_WORKERS      files classified in parallel
  SRB2MODNAME_STRICT_UTF8  reject SOC text that is not valid UTF-8
  SRB2MODNAME_EXCLUDE      comma separated PK3 exclude patterns`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newClassifyCmd(cfg, logger),
		newLumpsCmd(),
		newTargetsCmd(),
	)

	return root
}
