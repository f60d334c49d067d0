package lsearch

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchers = map[string]func([]int, int) (int, error){
	"iterative": Search[[]int, int],
	"recursive": SearchRecursive[[]int, int],
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		list     []int
		target   int
		expected int
		found    bool
	}{
		{"find 7", []int{0, 1, 7, 9}, 7, 2, true},
		{"not find 8", []int{0, 1, 7, 9}, 8, -1, false},
		{"find at index 0", []int{0, 1, 7, 9}, 0, 0, true},
		{"find last", []int{0, 1, 7, 9}, 9, 3, true},
		{"empty", []int{}, 5, -1, false},
		{"nil", nil, 5, -1, false},
		{"first of duplicates", []int{4, 2, 2, 2}, 2, 1, true},
	}

	for name, search := range searchers {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				idx, err := search(tt.list, tt.target)
				if tt.found {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, ErrNotFound)
				}
				assert.Equal(t, tt.expected, idx)
			})
		}
	}
}

func TestSearchDoesNotMutate(t *testing.T) {
	s := []int{9, 3, 5}
	_, _ = Search(s, 5)
	_, _ = SearchRecursive(s, 5)
	assert.Equal(t, []int{9, 3, 5}, s)
}

func TestSearchFunc(t *testing.T) {
	idx, err := SearchFunc([]string{"go", "rust", "zig"}, func(s string) bool {
		return len(s) > 2
	})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = SearchFunc([]string{"go"}, func(s string) bool { return s == "" })
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, -1, idx)
}

func TestSearchRecursiveLimit(t *testing.T) {
	s := make([]int, MaxRecursionDepth)
	s[len(s)-1] = 1

	idx, err := SearchRecursive(s, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxRecursionDepth-1, idx)

	s = append(s, 2)
	idx, err = SearchRecursive(s, 2)
	require.ErrorIs(t, err, ErrRecursionLimit)
	assert.Equal(t, -1, idx)

	idx, err = Search(s, 2)
	require.NoError(t, err)
	assert.Equal(t, MaxRecursionDepth, idx)
}

func TestSearchProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 1000 {
		s := make([]int, rng.Intn(50))
		for i := range s {
			s[i] = rng.Intn(40)
		}
		target := rng.Intn(50)

		idx, err := Search(s, target)
		ridx, rerr := SearchRecursive(s, target)
		assert.Equal(t, idx, ridx)
		assert.Equal(t, err, rerr)

		if want := slices.Index(s, target); want >= 0 {
			require.NoError(t, err)
			assert.Equal(t, want, idx)
		} else {
			require.ErrorIs(t, err, ErrNotFound)
		}
	}
}

func FuzzSearch(f *testing.F) {
	f.Add([]byte{0, 1, 7, 9}, byte(7))
	f.Add([]byte{}, byte(5))
	f.Fuzz(func(t *testing.T, data []byte, target byte) {
		idx, err := Search(data, target)
		want := slices.Index(data, target)
		if want < 0 {
			if err != ErrNotFound {
				t.Fatalf("target %d absent but got index %d", target, idx)
			}
			return
		}
		if err != nil || idx != want {
			t.Fatalf("got (%d, %v), want %d", idx, err, want)
		}
	})
}

func BenchmarkSearch(b *testing.B) {
	s := make([]int, 100_000)
	for i := range s {
		s[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Search(s, -1)
	}
}
