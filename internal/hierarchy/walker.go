package hierarchy

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/compengine/internal/domain"
)

const DefaultMaxDepth = 50

//go:generate mockgen -source=walker.go -destination=mock_walker.go -package=hierarchy

// AccountReader is the storage the walker reads. GetAccount returns nil, nil
// for an unknown id.
type AccountReader interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListChildren(ctx context.Context, id string) ([]domain.Account, error)
}

type Walker struct {
	accounts AccountReader
	maxDepth int
}

func New(accounts AccountReader, maxDepth int) *Walker {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Walker{accounts: accounts, maxDepth: maxDepth}
}

func (w *Walker) MaxDepth() int {
	return w.maxDepth
}

// Node is a descendant together with its distance from the walk's start.
type Node struct {
	Account domain.Account
	Depth   int
}

// Branch is one direct child of an account and every descendant under it.
// Nodes starts with the head itself at depth 1.
type Branch struct {
	Head  domain.Account
	Nodes []Node
}

// Upline returns the ancestors of accountID, nearest first. Root terminates the
// walk and is not part of the result.
func (w *Walker) Upline(ctx context.Context, accountID string) ([]domain.Account, error) {
	start, err := w.get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if start.ID == domain.RootID {
		return nil, nil
	}
	if start.IsRoot() {
		return nil, w.fail(newIntegrityError(KindSelfReference, accountID, start.ID))
	}

	visited := map[string]struct{}{start.ID: {}}
	chain := make([]domain.Account, 0, 8)
	cur := start
	for cur.UplineID != domain.RootID {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(chain) >= w.maxDepth {
			return nil, w.fail(newIntegrityError(KindDepthExceeded, accountID, cur.ID))
		}
		if _, seen := visited[cur.UplineID]; seen {
			return nil, w.fail(newIntegrityError(KindCycle, accountID, cur.UplineID))
		}

		parent, err := w.accounts.GetAccount(ctx, cur.UplineID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, w.fail(newIntegrityError(KindOrphan, accountID, cur.ID))
		}
		if parent.IsRoot() {
			return nil, w.fail(newIntegrityError(KindSelfReference, accountID, parent.ID))
		}

		visited[parent.ID] = struct{}{}
		chain = append(chain, *parent)
		cur = parent
	}
	return chain, nil
}

// Depth returns how far accountID sits below Root, 0 for Root itself. It fails
// like Upline when the chain does not reach Root within the depth bound.
func (w *Walker) Depth(ctx context.Context, accountID string) (int, error) {
	chain, err := w.Upline(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if accountID == domain.RootID {
		return 0, nil
	}
	return len(chain) + 1, nil
}

// Children returns the direct descendants of accountID. Root's own row is not
// its child.
func (w *Walker) Children(ctx context.Context, accountID string) ([]domain.Account, error) {
	children, err := w.accounts.ListChildren(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(children))
	for _, c := range children {
		if c.ID != accountID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Branches walks the downline of accountID, one goroutine per direct child.
func (w *Walker) Branches(ctx context.Context, accountID string) ([]Branch, error) {
	children, err := w.Children(ctx, accountID)
	if err != nil {
		return nil, err
	}

	branches := make([]Branch, len(children))
	g, gctx := errgroup.WithContext(ctx)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			nodes, err := w.walkDown(gctx, accountID, child)
			if err != nil {
				return err
			}
			branches[i] = Branch{Head: child, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ie, ok := AsIntegrityError(err); ok {
			return nil, w.fail(ie)
		}
		return nil, err
	}
	return branches, nil
}

// Downline returns every descendant of accountID.
func (w *Walker) Downline(ctx context.Context, accountID string) ([]Node, error) {
	branches, err := w.Branches(ctx, accountID)
	if err != nil {
		return nil, err
	}
	var nodes []Node
	for _, b := range branches {
		nodes = append(nodes, b.Nodes...)
	}
	return nodes, nil
}

// walkDown collects the subtree under head. A quarantined account is kept but
// not expanded. Violations name the account where they were found, not the
// walk's start, so only the broken part of the tree gets quarantined.
func (w *Walker) walkDown(ctx context.Context, startID string, head domain.Account) ([]Node, error) {
	visited := map[string]struct{}{startID: {}, head.ID: {}}
	nodes := []Node{{Account: head, Depth: 1}}

	for i := 0; i < len(nodes); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := nodes[i]
		if n.Account.Status.Quarantined {
			continue
		}
		children, err := w.Children(ctx, n.Account.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if _, seen := visited[c.ID]; seen {
				return nil, newIntegrityError(KindCycle, n.Account.ID, c.ID)
			}
			if n.Depth+1 > w.maxDepth {
				if c.Status.Quarantined {
					continue
				}
				return nil, newIntegrityError(KindDepthExceeded, c.ID, c.ID)
			}
			visited[c.ID] = struct{}{}
			nodes = append(nodes, Node{Account: c, Depth: n.Depth + 1})
		}
	}
	return nodes, nil
}

func (w *Walker) get(ctx context.Context, id string) (*domain.Account, error) {
	acc, err := w.accounts.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (w *Walker) fail(err *IntegrityError) error {
	zap.L().Warn("hierarchy walk aborted",
		zap.String("kind", string(err.Kind)),
		zap.String("account_id", err.AccountID),
		zap.String("offender", err.Offender),
	)
	return err
}
