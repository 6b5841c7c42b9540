package models

import "strings"

// CategoryNode is one node of the two-level product category tree.
// Ids are integers unique across the whole tree.
type CategoryNode struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Children []*CategoryNode `json:"children,omitempty"`
}

func (n *CategoryNode) NodeID() int                         { return n.ID }
func (n *CategoryNode) ChildNodes() []*CategoryNode         { return n.Children }
func (n *CategoryNode) SetChildNodes(c []*CategoryNode)     { n.Children = c }

// MenuNode is one node of the three-level navigation menu tree. Leaf nodes
// carry a path, normalized to start with "/".
type MenuNode struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Path     string      `json:"path,omitempty"`
	Children []*MenuNode `json:"children,omitempty"`
}

func (n *MenuNode) NodeID() int                 { return n.ID }
func (n *MenuNode) ChildNodes() []*MenuNode     { return n.Children }
func (n *MenuNode) SetChildNodes(c []*MenuNode) { n.Children = c }

// NormalizeMenuPath trims the path and forces a leading slash.
func NormalizeMenuPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateCategoryRequest creates a primary node when ParentID is zero, or a
// secondary node under ParentID otherwise.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required" example:"Indoor robots"`
	ParentID int    `json:"parent_id,omitempty" example:"0"`
}

// CreateMenuRequest creates a menu node. ParentID zero makes a first-level
// menu; a leaf (third-level) node must carry a path.
type CreateMenuRequest struct {
	Name     string `json:"name" binding:"required" example:"Patrol"`
	ParentID int    `json:"parent_id,omitempty"`
	Path     string `json:"path,omitempty" example:"/outdoor/patrol"`
}
