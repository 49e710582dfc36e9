package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmane/redmane/pkg/grouping"
)

type row struct {
	ParentID int64
	Key      *string
	Value    *string
}

type kv struct {
	Key   string
	Value string
}

func str(s string) *string {
	return &s
}

func groupRows(rows []row) []grouping.Group[int64, kv] {
	return grouping.GroupSorted(
		rows,
		func(r row) int64 { return r.ParentID },
		func(r row) int64 { return r.ParentID },
		func(r row) (kv, bool) {
			if r.Key == nil {
				return kv{}, false
			}

			return kv{Key: *r.Key, Value: *r.Value}, true
		},
	)
}

func TestGroupSorted(t *testing.T) {
	t.Parallel()

	scenarios := []struct {
		name     string
		rows     []row
		expected []grouping.Group[int64, kv]
	}{
		{
			name:     "no rows",
			rows:     nil,
			expected: []grouping.Group[int64, kv]{},
		},
		{
			name: "parents with and without children",
			rows: []row{
				{ParentID: 1, Key: str("k1"), Value: str("v1")},
				{ParentID: 1, Key: str("k2"), Value: str("v2")},
				{ParentID: 2},
			},
			expected: []grouping.Group[int64, kv]{
				{Parent: 1, Children: []kv{{"k1", "v1"}, {"k2", "v2"}}},
				{Parent: 2, Children: []kv{}},
			},
		},
		{
			name: "child order within a parent is kept",
			rows: []row{
				{ParentID: 3, Key: str("b"), Value: str("2")},
				{ParentID: 3, Key: str("a"), Value: str("1")},
				{ParentID: 5, Key: str("c"), Value: str("3")},
			},
			expected: []grouping.Group[int64, kv]{
				{Parent: 3, Children: []kv{{"b", "2"}, {"a", "1"}}},
				{Parent: 5, Children: []kv{{"c", "3"}}},
			},
		},
		{
			name: "parent order follows input",
			rows: []row{
				{ParentID: 9},
				{ParentID: 4, Key: str("k"), Value: str("v")},
				{ParentID: 7},
			},
			expected: []grouping.Group[int64, kv]{
				{Parent: 9, Children: []kv{}},
				{Parent: 4, Children: []kv{{"k", "v"}}},
				{Parent: 7, Children: []kv{}},
			},
		},
		{
			name: "key seen again after another key starts a new group",
			rows: []row{
				{ParentID: 1, Key: str("a"), Value: str("1")},
				{ParentID: 2},
				{ParentID: 1, Key: str("b"), Value: str("2")},
			},
			expected: []grouping.Group[int64, kv]{
				{Parent: 1, Children: []kv{{"a", "1"}}},
				{Parent: 2, Children: []kv{}},
				{Parent: 1, Children: []kv{{"b", "2"}}},
			},
		},
	}

	for _, scenario := range scenarios {
		scenario := scenario

		t.Run(scenario.name, func(t *testing.T) {
			t.Parallel()

			actual := groupRows(scenario.rows)
			require.Len(t, actual, len(scenario.expected))
			assert.Equal(t, scenario.expected, actual)

			for _, g := range actual {
				assert.NotNil(t, g.Children)
			}
		})
	}
}

func TestGroupSortedIsIdempotent(t *testing.T) {
	t.Parallel()

	rows := []row{
		{ParentID: 1, Key: str("k1"), Value: str("v1")},
		{ParentID: 1, Key: str("k2"), Value: str("v2")},
		{ParentID: 2},
		{ParentID: 3, Key: str("k3"), Value: str("v3")},
	}

	first := groupRows(rows)

	// Flatten the grouped output back into rows and group it again.
	flattened := make([]row, 0, len(rows))
	for _, g := range first {
		if len(g.Children) == 0 {
			flattened = append(flattened, row{ParentID: g.Parent})

			continue
		}

		for _, c := range g.Children {
			flattened = append(flattened, row{ParentID: g.Parent, Key: str(c.Key), Value: str(c.Value)})
		}
	}

	assert.Equal(t, first, groupRows(flattened))
}

func TestMap(t *testing.T) {
	t.Parallel()

	groups := []grouping.Group[string, int]{
		{Parent: "a", Children: []int{1, 2}},
		{Parent: "b", Children: []int{}},
	}

	sums := grouping.Map(groups, func(p string, c []int) string {
		total := 0
		for _, v := range c {
			total += v
		}

		return p + ":" + string(rune('0'+total))
	})

	assert.Equal(t, []string{"a:3", "b:0"}, sums)
}
