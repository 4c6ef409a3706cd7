package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/compengine/internal/domain"
)

func TestTree_Mark(t *testing.T) {
	accounts := []domain.Account{
		{ID: domain.RootID, UplineID: domain.RootID},
		{ID: "a", UplineID: domain.RootID},
		{ID: "b", UplineID: "a"},
		{ID: "c", UplineID: "a"},
		{ID: "d", UplineID: "b", Rank: "director"},
		{ID: "e", UplineID: "c"},
		{ID: "x", UplineID: "y", Rank: "director"},
		{ID: "y", UplineID: "x"},
	}
	tree := NewTree(accounts)

	assert.Equal(t, 6, tree.Len())
	assert.ElementsMatch(t, []string{"b", "c"}, tree.Children("a"))

	marked := tree.Mark(func(a domain.Account) bool { return a.Rank == "director" })
	assert.True(t, marked["d"])
	assert.True(t, marked["b"])
	assert.True(t, marked["a"])
	assert.True(t, marked[domain.RootID])
	assert.False(t, marked["c"])
	assert.False(t, marked["e"])
	assert.False(t, marked["x"], "accounts outside the root tree are ignored")
}

func TestTree_WalkParentsFirst(t *testing.T) {
	tree := NewTree([]domain.Account{
		{ID: "b", UplineID: "a"},
		{ID: domain.RootID, UplineID: domain.RootID},
		{ID: "a", UplineID: domain.RootID},
	})

	var order []string
	tree.Walk(func(a domain.Account) { order = append(order, a.ID) })
	assert.Equal(t, []string{domain.RootID, "a", "b"}, order)
}

func TestTree_WithoutRoot(t *testing.T) {
	tree := NewTree([]domain.Account{{ID: "a", UplineID: "b"}})
	assert.Equal(t, 0, tree.Len())
	_, ok := tree.Get("a")
	assert.True(t, ok)
}
