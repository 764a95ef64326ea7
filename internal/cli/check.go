// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/logictab"
)

var checkCmd = &cobra.Command{
	Use:   "check circuit_file...",
	Short: "validate circuit description files without enumerating them.",
	Long: `Load each circuit description and report its gate, input and output
counts. Loading aborts on the first faulty line of a file, with a
diagnostic naming the rule that failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			c, tt, err := logictab.LoadFile(path)
			if err != nil {
				return err
			}
			n := len(tt.Header())
			log.Debugf("%s: header %v", path, tt.Header())
			fmt.Printf("%s: %d gates, %d table columns\n", path, c.Size(), n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
