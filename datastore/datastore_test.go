package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO_OrderAndCapacity(t *testing.T) {
	s := NewFIFO[int](2)
	require.Equal(t, Empty, s.State())

	s.Put(1)
	assert.Equal(t, Partial, s.State())
	s.Put(2)
	assert.Equal(t, Full, s.State())
	assert.Panics(t, func() { s.Put(3) })

	assert.Equal(t, 1, s.Get())
	assert.Equal(t, Partial, s.State())
	s.Put(3)
	assert.Equal(t, Full, s.State())
	assert.Equal(t, 2, s.Get())
	assert.Equal(t, 3, s.Get())
	assert.Equal(t, Empty, s.State())
	assert.Panics(t, func() { s.Get() })
}

func TestFIFO_WrapAround(t *testing.T) {
	s := NewFIFO[int](3)
	for i := 0; i < 10; i++ {
		s.Put(i)
		require.Equal(t, i, s.Get())
	}
}

func TestFIFO_StartEndGet(t *testing.T) {
	s := NewFIFO[string](2)
	s.Put("a")
	s.Put("b")

	require.Equal(t, "a", s.StartGet())
	assert.Panics(t, func() { s.Get() }, "Get during an in-progress StartGet is a programmer error")
	assert.Equal(t, Full, s.State(), "value is still logically present until EndGet")
	s.EndGet()
	assert.Equal(t, "b", s.Get())
}

func TestFIFO_Clone(t *testing.T) {
	s := NewFIFO[int](4)
	s.Put(1)
	clone := s.Clone()
	assert.Equal(t, Empty, clone.State())
	clone.Put(2)
	assert.Equal(t, 1, s.Get(), "cloning must not share storage with the original")
}

func TestUnbounded_NeverFull(t *testing.T) {
	s := NewUnbounded[int]()
	for i := 0; i < 1000; i++ {
		s.Put(i)
		assert.NotEqual(t, Full, s.State())
	}
	for i := 0; i < 1000; i++ {
		require.Equal(t, i, s.Get())
	}
	assert.Equal(t, Empty, s.State())
}

func TestOverwritingOldest(t *testing.T) {
	s := NewOverwriting[int](3, OverwriteOldest)
	s.Put(1)
	s.Put(2)
	s.Put(3)
	require.Equal(t, Partial, s.State(), "overwriting stores never report Full")
	s.Put(4) // discards 1
	assert.Equal(t, 2, s.Get())
	assert.Equal(t, 3, s.Get())
	assert.Equal(t, 4, s.Get())
	assert.Equal(t, Empty, s.State())
}

func TestOverwritingNewest(t *testing.T) {
	s := NewOverwriting[int](2, OverwriteNewest)
	s.Put(1)
	s.Put(2)
	s.Put(3) // buffer full of [1,2]; 3 is discarded, not 1
	assert.Equal(t, 1, s.Get())
	assert.Equal(t, 2, s.Get())
	assert.Equal(t, Empty, s.State())
}

func TestOverwriting_Clone(t *testing.T) {
	s := NewOverwriting[int](2, OverwriteOldest)
	s.Put(1)
	clone := s.Clone()
	assert.Equal(t, Empty, clone.State())
}
