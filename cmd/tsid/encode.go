package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/tsid/encoding"
	"github.com/arloliu/tsid/format"
	"github.com/arloliu/tsid/hash"
	"github.com/arloliu/tsid/keystore"
	"github.com/arloliu/tsid/labelcsv"
)

func newEncodeCmd() *cobra.Command {
	var (
		codecName string
		output    string
		asMap     bool
	)

	cmd := &cobra.Command{
		Use:   "encode <labels.csv[.gz]>",
		Short: "Encode label rows into a parquet file of primary keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := labelcsv.ReadFile(args[0], hash.XXHash64)
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer file.Close()

			if asMap {
				if err := keystore.WriteLabelMap(file, labels.Names, labels.Values); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d label-map rows to %s\n", len(labels.Values), output)

				return file.Close()
			}

			encodingType, ok := format.ParseEncoding(codecName)
			if !ok {
				return fmt.Errorf("unknown codec %q", codecName)
			}

			codec, err := encoding.NewRowCodec(encodingType)
			if err != nil {
				return err
			}

			rows := make([]encoding.Row, len(labels.Values))
			for i := range labels.Values {
				rows[i] = labels.RowAt(i)
			}

			if err := keystore.WriteKeys(file, codec, rows); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %s keys to %s\n", len(rows), codec.Name(), output)

			return file.Close()
		},
	}

	cmd.Flags().StringVar(&codecName, "codec", "varint", "row codec (length_prefixed, varint, memcomparable, flatbuffer)")
	cmd.Flags().StringVarP(&output, "output", "o", "keys.parquet", "output parquet path")
	cmd.Flags().BoolVar(&asMap, "map", false, "write raw labels as a map column instead of encoded keys")

	return cmd
}
