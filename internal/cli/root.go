// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the logictab command tree.
//
package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "logictab",
	Short: "Truth table generator for logic gate networks.",
	Long: `logictab loads a circuit description file and enumerates the truth
table of the resulting gate network over all assignments of its
variable inputs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command. It is called once from main.
//
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Int("max-steps", 0, "propagation step budget per stimulus (0 = default)")
}

func maxStepsFlag(cmd *cobra.Command) int {
	n, err := cmd.Flags().GetInt("max-steps")
	if err != nil {
		panic(err)
	}
	return n
}
