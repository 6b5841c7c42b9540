package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/tree"
)

var (
	// ErrNodeNotFound means the referenced tree node id does not exist.
	ErrNodeNotFound = errors.New("tree node not found")

	// ErrTreeDepth means the requested insert would exceed the tree's
	// maximum depth.
	ErrTreeDepth = errors.New("tree depth exceeded")

	// ErrMenuPathRequired means a leaf menu node was created without a
	// path.
	ErrMenuPathRequired = errors.New("menu path required for leaf nodes")

	// ErrTreeConflict means repeated optimistic writes lost to another
	// editor.
	ErrTreeConflict = errors.New("tree was modified concurrently")
)

const (
	categoryTreeKey  = "categories"
	menuTreeKey      = "nav_menus"
	categoryMaxDepth = 2
	menuMaxDepth     = 3
)

// ─── Category tree (two levels) ──────────────────────────────────────────────

// CategoryTreeService owns the product category tree blob. Whole-tree
// read-mutate-write, the way the original editor worked; the blob version
// rejects concurrent editors.
type CategoryTreeService struct {
	store blobstore.Store
}

func NewCategoryTreeService(store blobstore.Store) *CategoryTreeService {
	return &CategoryTreeService{store: store}
}

// Load returns the tree. Corrupt content is an empty tree.
func (s *CategoryTreeService) Load(ctx context.Context) ([]*models.CategoryNode, int64, error) {
	blob, ok, err := s.store.Get(ctx, categoryTreeKey)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return []*models.CategoryNode{}, 0, nil
	}
	var roots []*models.CategoryNode
	if err := json.Unmarshal(blob.Data, &roots); err != nil {
		return []*models.CategoryNode{}, blob.Version, nil
	}
	return roots, blob.Version, nil
}

func (s *CategoryTreeService) save(ctx context.Context, roots []*models.CategoryNode, version int64) error {
	data, err := json.Marshal(roots)
	if err != nil {
		return err
	}
	_, err = s.store.Put(ctx, categoryTreeKey, data, version)
	if errors.Is(err, blobstore.ErrStale) {
		return ErrTreeConflict
	}
	return err
}

// Create adds a node. parentID zero creates a primary category; otherwise
// the parent must be a primary node (the tree is two levels deep).
func (s *CategoryTreeService) Create(ctx context.Context, parentID int, name string) (*models.CategoryNode, error) {
	roots, version, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	node := &models.CategoryNode{ID: tree.NextID(roots), Name: name}
	if parentID != 0 {
		parent, ok := tree.Find(roots, parentID)
		if !ok {
			return nil, ErrNodeNotFound
		}
		if depthOf(roots, parent.ID) >= categoryMaxDepth {
			return nil, ErrTreeDepth
		}
	}
	roots, ok := tree.Insert(roots, parentID, node)
	if !ok {
		return nil, ErrNodeNotFound
	}
	if err := s.save(ctx, roots, version); err != nil {
		return nil, err
	}
	return node, nil
}

// Delete removes a node and all of its descendants in one write.
func (s *CategoryTreeService) Delete(ctx context.Context, id int) error {
	roots, version, err := s.Load(ctx)
	if err != nil {
		return err
	}
	roots, ok := tree.Remove(roots, id)
	if !ok {
		return ErrNodeNotFound
	}
	return s.save(ctx, roots, version)
}

// ─── Navigation menu tree (three levels, leaf path) ──────────────────────────

// MenuTreeService owns the navigation menu tree blob. Three levels; leaf
// nodes carry a path normalized to start with "/".
type MenuTreeService struct {
	store blobstore.Store
}

func NewMenuTreeService(store blobstore.Store) *MenuTreeService {
	return &MenuTreeService{store: store}
}

func (s *MenuTreeService) Load(ctx context.Context) ([]*models.MenuNode, int64, error) {
	blob, ok, err := s.store.Get(ctx, menuTreeKey)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return []*models.MenuNode{}, 0, nil
	}
	var roots []*models.MenuNode
	if err := json.Unmarshal(blob.Data, &roots); err != nil {
		return []*models.MenuNode{}, blob.Version, nil
	}
	return roots, blob.Version, nil
}

func (s *MenuTreeService) save(ctx context.Context, roots []*models.MenuNode, version int64) error {
	data, err := json.Marshal(roots)
	if err != nil {
		return err
	}
	_, err = s.store.Put(ctx, menuTreeKey, data, version)
	if errors.Is(err, blobstore.ErrStale) {
		return ErrTreeConflict
	}
	return err
}

// Create adds a menu node under parentID (zero for a first-level menu).
// Third-level nodes are leaves and must carry a path.
func (s *MenuTreeService) Create(ctx context.Context, parentID int, name, path string) (*models.MenuNode, error) {
	roots, version, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	depth := 1
	if parentID != 0 {
		parent, ok := tree.Find(roots, parentID)
		if !ok {
			return nil, ErrNodeNotFound
		}
		depth = menuDepthOf(roots, parent.ID) + 1
		if depth > menuMaxDepth {
			return nil, ErrTreeDepth
		}
	}

	node := &models.MenuNode{ID: tree.NextID(roots), Name: name}
	if depth == menuMaxDepth {
		normalized := models.NormalizeMenuPath(path)
		if normalized == "" {
			return nil, ErrMenuPathRequired
		}
		node.Path = normalized
	} else if path != "" {
		node.Path = models.NormalizeMenuPath(path)
	}

	roots, ok := tree.Insert(roots, parentID, node)
	if !ok {
		return nil, ErrNodeNotFound
	}
	if err := s.save(ctx, roots, version); err != nil {
		return nil, err
	}
	return node, nil
}

// Delete removes a menu node and its whole subtree. Products referencing
// the removed ids are intentionally not touched.
func (s *MenuTreeService) Delete(ctx context.Context, id int) error {
	roots, version, err := s.Load(ctx)
	if err != nil {
		return err
	}
	roots, ok := tree.Remove(roots, id)
	if !ok {
		return ErrNodeNotFound
	}
	return s.save(ctx, roots, version)
}

// ─── depth helpers ───────────────────────────────────────────────────────────

func depthOf(roots []*models.CategoryNode, id int) int {
	found := 0
	tree.Walk(roots, func(n *models.CategoryNode, depth int) bool {
		if n.ID == id {
			found = depth + 1
			return false
		}
		return true
	})
	return found
}

func menuDepthOf(roots []*models.MenuNode, id int) int {
	found := 0
	tree.Walk(roots, func(n *models.MenuNode, depth int) bool {
		if n.ID == id {
			found = depth + 1
			return false
		}
		return true
	})
	return found
}
