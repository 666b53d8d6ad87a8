package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeInclusiveBoundaries(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 0; i < 20; i += 2 {
		require.NoError(t, tree.Insert(i))
	}

	got := tree.Range(4, 10)
	require.Equal(t, []int{4, 6, 8, 10}, got)

	got = tree.Range(5, 9)
	require.Equal(t, []int{6, 8}, got)

	got = tree.Range(-100, 100)
	want := make([]int, 0, 10)
	for i := 0; i < 20; i += 2 {
		want = append(want, i)
	}
	require.Equal(t, want, got)
}

func TestRangeEmptyResult(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 0; i < 10; i++ {
		require.NoError(t, tree.Insert(i))
	}

	got := tree.Range(100, 200)
	require.Empty(t, got)
}

func TestRangeOnEmptyTree(t *testing.T) {
	tree := newIntTree(t, 4)
	require.Empty(t, tree.Range(0, 10))
}

func TestRangeSpansMultipleLeaves(t *testing.T) {
	tree := newIntTree(t, 3)
	for i := 0; i < 100; i++ {
		require.NoError(t, tree.Insert(i))
	}

	got := tree.Range(10, 89)
	require.Len(t, got, 80)
	for i, v := range got {
		require.Equal(t, 10+i, v)
	}
}
