package columnar

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/longbow-cvec/internal/cvec"
)

func TestNewArray(t *testing.T) {
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)

	x := []complex64{1 + 2i, -3 + 0.5i, 4i}
	arr := NewArray(pool, x)
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.True(t, arrow.TypeEqual(Complex64Type, arr.DataType()))

	values := arr.ListValues().(*array.Float32)
	assert.Equal(t, []float32{1, 2, -3, 0.5, 0, 4}, values.Float32Values())

	got, err := Complex64s(arr)
	require.NoError(t, err)
	assert.Equal(t, x, got)
}

func TestComplex64s_Empty(t *testing.T) {
	pool := memory.NewGoAllocator()
	arr := NewArray(pool, nil)
	defer arr.Release()

	got, err := Complex64s(arr)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestComplex64s_Sliced(t *testing.T) {
	pool := memory.NewGoAllocator()
	arr := NewArray(pool, []complex64{1, 2i, 3, 4i})
	defer arr.Release()

	sliced := array.NewSlice(arr, 1, 3)
	defer sliced.Release()

	got, err := Complex64s(sliced)
	require.NoError(t, err)
	assert.Equal(t, []complex64{2i, 3}, got)
}

func TestComplex64s_DType(t *testing.T) {
	pool := memory.NewGoAllocator()

	t.Run("Float32", func(t *testing.T) {
		b := array.NewFloat32Builder(pool)
		defer b.Release()
		b.AppendValues([]float32{1, 2}, nil)
		arr := b.NewArray()
		defer arr.Release()

		_, err := Complex64s(arr)
		assert.ErrorIs(t, err, ErrDType)
	})

	t.Run("ThreeLanes", func(t *testing.T) {
		b := array.NewFixedSizeListBuilder(pool, 3, arrow.PrimitiveTypes.Float32)
		defer b.Release()
		fb := b.ValueBuilder().(*array.Float32Builder)
		b.Append(true)
		fb.AppendValues([]float32{1, 2, 3}, nil)
		arr := b.NewArray()
		defer arr.Release()

		_, err := Complex64s(arr)
		assert.ErrorIs(t, err, ErrDType)
	})

	t.Run("Float64Lanes", func(t *testing.T) {
		b := array.NewFixedSizeListBuilder(pool, 2, arrow.PrimitiveTypes.Float64)
		defer b.Release()
		fb := b.ValueBuilder().(*array.Float64Builder)
		b.Append(true)
		fb.AppendValues([]float64{1, 2}, nil)
		arr := b.NewArray()
		defer arr.Release()

		_, err := Complex64s(arr)
		assert.ErrorIs(t, err, ErrDType)
	})
}

func TestComplex64s_Nulls(t *testing.T) {
	pool := memory.NewGoAllocator()

	t.Run("NullSlot", func(t *testing.T) {
		b := array.NewFixedSizeListBuilder(pool, 2, arrow.PrimitiveTypes.Float32)
		defer b.Release()
		fb := b.ValueBuilder().(*array.Float32Builder)
		b.Append(true)
		fb.AppendValues([]float32{1, 2}, nil)
		b.AppendNull()
		arr := b.NewArray()
		defer arr.Release()

		_, err := Complex64s(arr)
		assert.ErrorIs(t, err, ErrNulls)
	})

	t.Run("NullLane", func(t *testing.T) {
		b := array.NewFixedSizeListBuilder(pool, 2, arrow.PrimitiveTypes.Float32)
		defer b.Release()
		fb := b.ValueBuilder().(*array.Float32Builder)
		b.Append(true)
		fb.Append(1)
		fb.AppendNull()
		arr := b.NewArray()
		defer arr.Release()

		_, err := Complex64s(arr)
		assert.ErrorIs(t, err, ErrNulls)
	})
}

func TestView_InPlaceScale(t *testing.T) {
	pool := memory.NewGoAllocator()
	arr := NewArray(pool, []complex64{1 + 1i, 2 + 2i})
	defer arr.Release()

	view, err := View(arr)
	require.NoError(t, err)

	cvec.ScaleInPlace(view, complex(0.5, 0.25))

	values := arr.ListValues().(*array.Float32)
	assert.Equal(t, []float32{0.25, 0.75, 0.5, 1.5}, values.Float32Values())
}

func TestBuildRecordBatch(t *testing.T) {
	pool := memory.NewGoAllocator()

	rb := BuildRecordBatch(pool, "z", []complex64{3, 8})
	defer rb.Release()

	assert.Equal(t, int64(2), rb.NumRows())
	assert.Equal(t, int64(1), rb.NumCols())
	assert.Equal(t, "z", rb.ColumnName(0))

	got, err := Complex64s(rb.Column(0))
	require.NoError(t, err)
	assert.Equal(t, []complex64{3, 8}, got)
}
