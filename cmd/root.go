// Copyright 2020 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package cmd

import (
	"os"

	"github.com/snowfork/snowbridge/lightclient-harness/cmd/run"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "lightclient-harness",
	Short:        "Bootstraps and drives an Ethereum light client contract",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(run.Command())
	rootCmd.AddCommand(bootstrapCmd())
	rootCmd.AddCommand(correlateCmd())
	rootCmd.AddCommand(generateFixturesCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
