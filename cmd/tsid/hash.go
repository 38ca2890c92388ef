package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/tsid"
	"github.com/arloliu/tsid/hash"
	"github.com/arloliu/tsid/internal/collision"
	"github.com/arloliu/tsid/labelcsv"
)

func newHashCmd() *cobra.Command {
	var algName string

	cmd := &cobra.Command{
		Use:   "hash <labels.csv[.gz]>",
		Short: "Print the schema seed and per-row time-series IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := algorithmByName(algName)
			if err != nil {
				return err
			}

			labels, err := labelcsv.ReadFile(args[0], alg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "schema seed (%s): 0x%016x\n", alg.Name(), labels.NameHash)

			tracker := collision.NewTracker()
			for _, values := range labels.Values {
				id := tsid.RowTsID(alg, labels.NameHash, values)
				if err := tracker.Track(id, strings.Join(values, "\xff")); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}

				fmt.Fprintf(out, "0x%016x\n", id)
			}

			fmt.Fprintf(out, "%d rows, %d distinct ids, collisions: %v\n",
				len(labels.Values), tracker.Count(), tracker.HasCollision())

			return nil
		},
	}

	cmd.Flags().StringVar(&algName, "alg", hash.XXHash64.Name(), "hash algorithm (xxhash64 or fnv64a)")

	return cmd
}
