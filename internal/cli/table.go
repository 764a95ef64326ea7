// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"os"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/db47h/logictab"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] circuit_file",
	Short: "enumerate the truth table of a circuit description.",
	Long: `Load a circuit description file and print one row per assignment of
its variable inputs. Output is tab-separated; on a terminal, columns
are aligned unless --plain is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []logictab.Option
		if n := maxStepsFlag(cmd); n > 0 {
			opts = append(opts, logictab.WithMaxSteps(n))
		}
		c, tt, err := logictab.LoadFile(args[0], opts...)
		if err != nil {
			return err
		}
		log.Debugf("loaded %q: %d gates", args[0], c.Size())

		plain, _ := cmd.Flags().GetBool("plain")
		if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			return tt.Write(os.Stdout)
		}

		rows, err := tt.Run()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
		if _, err = w.Write([]byte(strings.Join(tt.Header(), "\t") + "\n")); err != nil {
			return err
		}
		for _, r := range rows {
			line := strings.Join(r.Inputs, "\t") + "\t" + strings.Join(r.Outputs, "\t") + "\n"
			if _, err = w.Write([]byte(line)); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("plain", false, "raw tab-separated output even on a terminal")
}
