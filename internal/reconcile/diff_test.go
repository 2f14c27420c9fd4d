package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lampi/looper/internal/model"
)

func loops(ids ...string) []model.Loop {
	out := make([]model.Loop, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Loop{ID: id, Name: "loop " + id})
	}
	return out
}

func ids(loops []model.Loop) []string {
	out := make([]string, 0, len(loops))
	for _, l := range loops {
		out = append(out, l.ID)
	}
	return out
}

func TestDiff_Identical(t *testing.T) {
	seq := loops("a", "b", "c")
	changes := Diff(seq, seq)
	assert.True(t, changes.Empty())
}

func TestDiff_RenameIsNotAChange(t *testing.T) {
	old := loops("a", "b")
	new := loops("a", "b")
	new[1].Name = "renamed"

	assert.True(t, Diff(old, new).Empty())
}

func TestDiff_Removal(t *testing.T) {
	changes := Diff(loops("a", "b", "c"), loops("a", "c"))

	assert.Equal(t, []Change{{ID: "b", From: 1, To: -1}}, changes.Removed)
	assert.Empty(t, changes.Inserted)
	assert.Empty(t, changes.Moved, "shifting up after a removal is not a move")
}

func TestDiff_Insertion(t *testing.T) {
	changes := Diff(loops("a", "c"), loops("x", "a", "b", "c"))

	assert.Equal(t, []Change{
		{ID: "x", From: -1, To: 0},
		{ID: "b", From: -1, To: 2},
	}, changes.Inserted)
	assert.Empty(t, changes.Removed)
	assert.Empty(t, changes.Moved)
}

func TestDiff_Mixed(t *testing.T) {
	changes := Diff(loops("a", "b", "c", "d"), loops("b", "a", "d", "e"))

	assert.Equal(t, []Change{{ID: "c", From: 2, To: -1}}, changes.Removed)
	assert.Equal(t, []Change{{ID: "e", From: -1, To: 3}}, changes.Inserted)
	assert.Equal(t, []Change{{ID: "b", From: 1, To: 0}}, changes.Moved)
}

func TestDiff_ReverseMovesAllButOne(t *testing.T) {
	changes := Diff(loops("a", "b", "c", "d"), loops("d", "c", "b", "a"))

	assert.Len(t, changes.Moved, 3)
	assert.Empty(t, changes.Removed)
	assert.Empty(t, changes.Inserted)
}

func TestDiff_Deterministic(t *testing.T) {
	old := loops("a", "b", "c", "d", "e")
	new := loops("e", "c", "a", "f", "b")

	first := Diff(old, new)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Diff(old, new))
	}
}

func TestDiff_EmptySequences(t *testing.T) {
	assert.True(t, Diff(nil, nil).Empty())

	changes := Diff(nil, loops("a"))
	assert.Len(t, changes.Inserted, 1)

	changes = Diff(loops("a"), nil)
	assert.Len(t, changes.Removed, 1)
}

func TestApply_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		old  []string
		new  []string
	}{
		{"same", []string{"a", "b"}, []string{"a", "b"}},
		{"remove middle", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"insert front", []string{"a", "b"}, []string{"z", "a", "b"}},
		{"swap", []string{"a", "b"}, []string{"b", "a"}},
		{"shuffle", []string{"a", "b", "c", "d", "e"}, []string{"e", "c", "a", "f", "b"}},
		{"replace all", []string{"a", "b"}, []string{"c", "d", "e"}},
		{"clear", []string{"a", "b"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			old := loops(tc.old...)
			new := loops(tc.new...)
			byID := make(map[string]model.Loop)
			for _, l := range new {
				byID[l.ID] = l
			}

			got, err := Apply(old, Diff(old, new), func(id string) (model.Loop, bool) {
				l, ok := byID[id]
				return l, ok
			})
			require.NoError(t, err)
			assert.Equal(t, ids(new), ids(got))
		})
	}
}

func TestApply_MissingInsert(t *testing.T) {
	old := loops("a")
	new := loops("a", "b")

	_, err := Apply(old, Diff(old, new), func(string) (model.Loop, bool) {
		return model.Loop{}, false
	})
	assert.ErrorIs(t, err, model.ErrLoopNotFound)
}

func TestDiff_SeedListDeletion(t *testing.T) {
	list := model.SeedLoops()
	old := list.Loops()

	list.RemoveLoops([]int{1})
	changes := Diff(old, list.Loops())

	require.Len(t, changes.Removed, 1)
	assert.Equal(t, old[1].ID, changes.Removed[0].ID)
	assert.Empty(t, changes.Moved)
	assert.Empty(t, changes.Inserted)
}

func TestLongestIncreasing(t *testing.T) {
	tests := []struct {
		values []int
		keep   int
	}{
		{nil, 0},
		{[]int{0, 1, 2}, 3},
		{[]int{2, 1, 0}, 1},
		{[]int{1, 0, 3}, 2},
		{[]int{4, 2, 0, 5, 1}, 2},
		{[]int{0, 4, 1, 2, 3}, 4},
	}

	for _, tt := range tests {
		keep := longestIncreasing(tt.values)
		count := 0
		last := -1
		for i, k := range keep {
			if k {
				count++
				assert.Greater(t, tt.values[i], last)
				last = tt.values[i]
			}
		}
		assert.Equal(t, tt.keep, count, "values %v", tt.values)
	}
}
