package hierarchy

import "github.com/GlebRadaev/compengine/internal/domain"

// Tree is an in-memory view of a full account snapshot. Accounts that cannot
// be reached from Root (cycles, orphans) are not part of it.
type Tree struct {
	accounts map[string]domain.Account
	children map[string][]string
	order    []string
}

func NewTree(accounts []domain.Account) *Tree {
	t := &Tree{
		accounts: make(map[string]domain.Account, len(accounts)),
		children: make(map[string][]string),
	}
	for _, a := range accounts {
		t.accounts[a.ID] = a
		if a.ID != a.UplineID {
			t.children[a.UplineID] = append(t.children[a.UplineID], a.ID)
		}
	}

	if _, ok := t.accounts[domain.RootID]; !ok {
		return t
	}
	visited := map[string]struct{}{domain.RootID: {}}
	t.order = append(t.order, domain.RootID)
	for i := 0; i < len(t.order); i++ {
		for _, c := range t.children[t.order[i]] {
			if _, seen := visited[c]; seen {
				continue
			}
			visited[c] = struct{}{}
			t.order = append(t.order, c)
		}
	}
	return t
}

func (t *Tree) Get(id string) (domain.Account, bool) {
	a, ok := t.accounts[id]
	return a, ok
}

func (t *Tree) Children(id string) []string {
	return t.children[id]
}

// Len is the number of accounts reachable from Root, Root included.
func (t *Tree) Len() int {
	return len(t.order)
}

// Mark reports for every reachable account whether its subtree, the account
// itself included, holds an account matching pred.
func (t *Tree) Mark(pred func(domain.Account) bool) map[string]bool {
	marked := make(map[string]bool, len(t.order))
	for i := len(t.order) - 1; i >= 0; i-- {
		id := t.order[i]
		if pred(t.accounts[id]) {
			marked[id] = true
			continue
		}
		for _, c := range t.children[id] {
			if marked[c] {
				marked[id] = true
				break
			}
		}
	}
	return marked
}

// Walk calls fn for every reachable account, parents before children.
func (t *Tree) Walk(fn func(domain.Account)) {
	for _, id := range t.order {
		fn(t.accounts[id])
	}
}
