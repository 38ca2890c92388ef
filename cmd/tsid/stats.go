package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/tsid/compress"
	"github.com/arloliu/tsid/encoding"
	"github.com/arloliu/tsid/format"
	"github.com/arloliu/tsid/hash"
	"github.com/arloliu/tsid/internal/pool"
	"github.com/arloliu/tsid/labelcsv"
)

var statEncodings = []format.EncodingType{
	format.TypeLengthPrefixed,
	format.TypeVarint,
	format.TypeMemcomparable,
	format.TypeFlatBuffer,
}

var statCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <labels.csv[.gz]>",
		Short: "Report encoded key sizes per codec, raw and compressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := labelcsv.ReadFile(args[0], hash.XXHash64)
			if err != nil {
				return err
			}

			rows := make([]encoding.Row, len(labels.Values))
			for i := range labels.Values {
				rows[i] = labels.RowAt(i)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %-6s %12s %10s\n", "codec", "comp", "bytes", "ratio")

			buf := pool.GetKeyBuffer()
			defer pool.PutKeyBuffer(buf)

			for _, encodingType := range statEncodings {
				codec, err := encoding.NewRowCodec(encodingType)
				if err != nil {
					return err
				}

				buf.Reset()
				for i, row := range rows {
					encoded, err := codec.Encode(buf.Bytes(), row)
					if err != nil {
						return fmt.Errorf("encode row %d with %s: %w", i, codec.Name(), err)
					}
					buf.B = encoded
				}

				rawSize := buf.Len()
				for _, compressionType := range statCompressions {
					cc, err := compress.GetCodec(compressionType)
					if err != nil {
						return err
					}

					compressed, err := cc.Compress(buf.Bytes())
					if err != nil {
						return fmt.Errorf("compress %s with %s: %w", codec.Name(), compressionType, err)
					}

					ratio := 0.0
					if rawSize > 0 {
						ratio = float64(len(compressed)) / float64(rawSize)
					}

					fmt.Fprintf(out, "%-16s %-6s %12d %10.3f\n",
						codec.Name(), compressionType, len(compressed), ratio)
				}
			}

			return nil
		},
	}

	return cmd
}
