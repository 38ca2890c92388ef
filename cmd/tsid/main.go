// Command tsid inspects label CSV data: it prints time-series identifiers,
// encodes rows into parquet-backed primary keys, and reports per-codec
// encoded sizes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/tsid/hash"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tsid",
		Short:         "Row-key encoding and time-series ID tooling for label CSV data",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newHashCmd(), newEncodeCmd(), newStatsCmd())

	return root
}

func algorithmByName(name string) (hash.Algorithm, error) {
	switch name {
	case hash.XXHash64.Name():
		return hash.XXHash64, nil
	case hash.FNV64a.Name():
		return hash.FNV64a, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q (want %s or %s)",
			name, hash.XXHash64.Name(), hash.FNV64a.Name())
	}
}
