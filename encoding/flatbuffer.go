package encoding

import (
	"fmt"
	"iter"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/tsid/encoding/labelrow"
	"github.com/arloliu/tsid/errs"
)

// FlatBufferCodec encodes rows as a FlatBuffers table for zero-copy reads.
//
// The layout is defined by schemas/label_row.fbs: a root PrimaryKeys table
// holding a vector of LabelAndColumnId entries, each carrying a uint32
// column id and a string value.
//
// Decode materializes the row; All iterates the entries lazily without
// copying value bytes out of the buffer.
type FlatBufferCodec struct{}

var _ RowCodec = FlatBufferCodec{}

// NewFlatBufferCodec creates a FlatBuffers codec.
func NewFlatBufferCodec() FlatBufferCodec {
	return FlatBufferCodec{}
}

func (c FlatBufferCodec) Name() string {
	return "flatbuffer"
}

// Encode appends the finished FlatBuffers representation of row to dst.
func (c FlatBufferCodec) Encode(dst []byte, row Row) ([]byte, error) {
	builder := flatbuffers.NewBuilder(64 + 16*len(row))

	entries := make([]flatbuffers.UOffsetT, len(row))
	for i := range row {
		value := builder.CreateString(row[i].Value)
		labelrow.LabelAndColumnIdStart(builder)
		labelrow.LabelAndColumnIdAddColumnId(builder, row[i].ColumnID)
		labelrow.LabelAndColumnIdAddLabelValue(builder, value)
		entries[i] = labelrow.LabelAndColumnIdEnd(builder)
	}

	labelrow.PrimaryKeysStartLabelValuesVector(builder, len(row))
	for i := len(entries) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(entries[i])
	}
	vec := builder.EndVector(len(row))

	labelrow.PrimaryKeysStart(builder)
	labelrow.PrimaryKeysAddLabelValues(builder, vec)
	labelrow.FinishPrimaryKeysBuffer(builder, labelrow.PrimaryKeysEnd(builder))

	return append(dst, builder.FinishedBytes()...), nil
}

// Decode parses a complete FlatBuffers-encoded buffer back into a row.
//
// Only the root offset is validated up front; a buffer corrupted beyond the
// root may panic inside the table accessors rather than misparse silently.
func (c FlatBufferCodec) Decode(data []byte) (Row, error) {
	root, err := c.validateRoot(data)
	if err != nil {
		return nil, err
	}

	keys := &labelrow.PrimaryKeys{}
	keys.Init(data, root)

	count := keys.LabelValuesLength()
	row := make(Row, 0, count)

	var entry labelrow.LabelAndColumnId
	for j := range count {
		if !keys.LabelValues(&entry, j) {
			return nil, fmt.Errorf("%w: entry %d unreachable", errs.ErrInvalidRootTable, j)
		}

		row = append(row, Field{ColumnID: entry.ColumnId(), Value: string(entry.LabelValue())})
	}

	return row, nil
}

// All returns a zero-copy iterator over the encoded entries. The yielded
// value bytes alias data and must not be modified or retained past the
// buffer's lifetime.
//
// All panics on buffers that do not hold a valid PrimaryKeys table; use
// Decode when the input is untrusted.
func (c FlatBufferCodec) All(data []byte) iter.Seq2[uint32, []byte] {
	return func(yield func(uint32, []byte) bool) {
		keys := labelrow.GetRootAsPrimaryKeys(data, 0)

		var entry labelrow.LabelAndColumnId
		for j := range keys.LabelValuesLength() {
			if !keys.LabelValues(&entry, j) {
				return
			}
			if !yield(entry.ColumnId(), entry.LabelValue()) {
				return
			}
		}
	}
}

// validateRoot checks that the buffer can hold a root table offset and that
// the offset lands inside the buffer. Returns the root table position.
func (c FlatBufferCodec) validateRoot(data []byte) (flatbuffers.UOffsetT, error) {
	if len(data) < flatbuffers.SizeUOffsetT {
		return 0, fmt.Errorf("%w: buffer shorter than root offset", errs.ErrInvalidRootTable)
	}

	root := flatbuffers.GetUOffsetT(data)
	if int(root) < flatbuffers.SizeUOffsetT || int(root)+flatbuffers.SizeSOffsetT > len(data) {
		return 0, fmt.Errorf("%w: root offset %d out of range", errs.ErrInvalidRootTable, root)
	}

	return root, nil
}
