// Package columnar maps complex64 vectors onto in-memory Apache Arrow arrays.
//
// A complex64 column is a FixedSizeList<float32>[2]: each list slot holds the
// real and imaginary lanes of one element, in that order.
package columnar

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

var (
	// ErrDType is returned for arrays that are not FixedSizeList<float32>[2].
	ErrDType = errors.New("columnar: expected fixed_size_list<float32>[2]")

	// ErrNulls is returned for arrays with null slots or null lanes.
	ErrNulls = errors.New("columnar: expected an array without nulls")
)

// lanes is the number of float32 values per complex64 element.
const lanes = 2

// Complex64Type is the Arrow type of a complex64 column.
var Complex64Type = arrow.FixedSizeListOf(lanes, arrow.PrimitiveTypes.Float32)

// NewArray copies x into a new Arrow array allocated from mem.
func NewArray(mem memory.Allocator, x []complex64) *array.FixedSizeList {
	b := array.NewFixedSizeListBuilder(mem, lanes, arrow.PrimitiveTypes.Float32)
	defer b.Release()

	fb := b.ValueBuilder().(*array.Float32Builder)
	b.Reserve(len(x))
	fb.Reserve(len(x) * lanes)
	for _, v := range x {
		b.Append(true)
		fb.Append(real(v))
		fb.Append(imag(v))
	}
	return b.NewArray().(*array.FixedSizeList)
}

// Complex64s validates arr and copies its elements out.
// The returned slice is owned by the caller.
func Complex64s(arr arrow.Array) ([]complex64, error) {
	view, err := View(arr)
	if err != nil {
		return nil, err
	}
	out := make([]complex64, len(view))
	copy(out, view)
	return out, nil
}

// View validates arr and returns its elements without copying.
// The slice aliases the Arrow buffer: it is only valid while arr is retained,
// and writes through it are visible to every reader of arr.
func View(arr arrow.Array) ([]complex64, error) {
	values, err := laneValues(arr)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []complex64{}, nil
	}
	return unsafe.Slice((*complex64)(unsafe.Pointer(&values[0])), len(values)/lanes), nil
}

func laneValues(arr arrow.Array) ([]float32, error) {
	fslType, ok := arr.DataType().(*arrow.FixedSizeListType)
	if !ok || fslType.Len() != lanes || fslType.Elem().ID() != arrow.FLOAT32 {
		return nil, fmt.Errorf("%w, got %s", ErrDType, arr.DataType())
	}
	fsl, ok := arr.(*array.FixedSizeList)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrDType, arr)
	}
	if fsl.NullN() > 0 {
		return nil, fmt.Errorf("%w: %d null slots", ErrNulls, fsl.NullN())
	}
	if fsl.Len() == 0 {
		return nil, nil
	}

	child := fsl.ListValues().(*array.Float32)
	start, _ := fsl.ValueOffsets(0)
	_, end := fsl.ValueOffsets(fsl.Len() - 1)
	for i := int(start); i < int(end); i++ {
		if child.IsNull(i) {
			return nil, fmt.Errorf("%w: null lane at %d", ErrNulls, i)
		}
	}
	return child.Float32Values()[start:end], nil
}

// BuildRecordBatch wraps x in a single-column record batch named name.
func BuildRecordBatch(mem memory.Allocator, name string, x []complex64) arrow.RecordBatch {
	schema := arrow.NewSchema(
		[]arrow.Field{
			{Name: name, Type: Complex64Type},
		},
		nil,
	)

	col := NewArray(mem, x)
	defer col.Release()

	return array.NewRecordBatch(schema, []arrow.Array{col}, int64(len(x)))
}
