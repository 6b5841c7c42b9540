package nav_cache

import (
	"sync"
	"time"

	"github.com/robomart-commerce/robomart-backend/models"
)

const TTL = 5 * time.Minute

// ── Category tree cache ──────────────────────────────────────────────────────
// Every storefront page reads the category tree; serve it from memory and
// refetch at most once per TTL.

type categoryEntry struct {
	roots     []*models.CategoryNode
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]*models.CategoryNode, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.roots, true
	}
	return nil, false
}

func SetCategories(roots []*models.CategoryNode) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{roots: roots, fetchedAt: time.Now()}
}

// ── Navigation menu tree cache ───────────────────────────────────────────────

type menuEntry struct {
	roots     []*models.MenuNode
	fetchedAt time.Time
}

var (
	menuMu    sync.RWMutex
	menuCache *menuEntry
)

func GetMenus() ([]*models.MenuNode, bool) {
	menuMu.RLock()
	defer menuMu.RUnlock()
	if menuCache != nil && time.Since(menuCache.fetchedAt) < TTL {
		return menuCache.roots, true
	}
	return nil, false
}

func SetMenus(roots []*models.MenuNode) {
	menuMu.Lock()
	defer menuMu.Unlock()
	menuCache = &menuEntry{roots: roots, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any category/menu create/delete) ──────────

func Invalidate() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()

	menuMu.Lock()
	menuCache = nil
	menuMu.Unlock()
}
