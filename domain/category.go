package domain

import (
	"strings"
	"time"
)

type Category struct {
	CategoryID  int        `gorm:"primaryKey;autoIncrement" json:"category_id"`
	Name        string     `gorm:"type:varchar(100);not null;" json:"name" valid:"required~Category name is required"`
	Description string     `gorm:"type:text" json:"description"`
	ParentID    *int       `gorm:"index" json:"parent_id"`
	Icon        string     `gorm:"type:varchar(50)" json:"icon"`
	Color       string     `gorm:"type:varchar(7);default:'#6c757d'" json:"color"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" json:"deleted_at"`
}

// CategoryNode is one node of the nested tree the public API returns.
type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children"`
}

// CategoryTree indexes a preloaded category slice by id and parent id.
// The parent relation is treated as a lookup index, not ownership, so
// walking it cannot recurse into cycles: every walk carries a seen set.
type CategoryTree struct {
	byID     map[int]*Category
	byParent map[int][]*Category
	roots    []*Category
}

func NewCategoryTree(categories []Category) *CategoryTree {
	t := &CategoryTree{
		byID:     make(map[int]*Category, len(categories)),
		byParent: make(map[int][]*Category),
	}
	for i := range categories {
		c := &categories[i]
		t.byID[c.CategoryID] = c
		if c.ParentID == nil {
			t.roots = append(t.roots, c)
		} else {
			t.byParent[*c.ParentID] = append(t.byParent[*c.ParentID], c)
		}
	}
	return t
}

func (t *CategoryTree) Roots() []*Category {
	return t.roots
}

// FullPath renders the ancestry chain like "Sports → Martial Arts → Boxing".
func (t *CategoryTree) FullPath(categoryID int) string {
	c, ok := t.byID[categoryID]
	if !ok {
		return ""
	}

	path := []string{c.Name}
	seen := map[int]bool{c.CategoryID: true}
	for c.ParentID != nil {
		parent, ok := t.byID[*c.ParentID]
		if !ok || seen[parent.CategoryID] {
			break
		}
		seen[parent.CategoryID] = true
		path = append([]string{parent.Name}, path...)
		c = parent
	}
	return strings.Join(path, " → ")
}

// Subtree returns every descendant of categoryID, depth first.
func (t *CategoryTree) Subtree(categoryID int) []*Category {
	var out []*Category
	seen := map[int]bool{categoryID: true}

	var walk func(id int)
	walk = func(id int) {
		for _, child := range t.byParent[id] {
			if seen[child.CategoryID] {
				continue
			}
			seen[child.CategoryID] = true
			out = append(out, child)
			walk(child.CategoryID)
		}
	}
	walk(categoryID)
	return out
}

// Nested builds the whole tree as nested nodes, roots first.
func (t *CategoryTree) Nested() []CategoryNode {
	var build func(c *Category, seen map[int]bool) CategoryNode
	build = func(c *Category, seen map[int]bool) CategoryNode {
		node := CategoryNode{Category: *c, Children: []CategoryNode{}}
		for _, child := range t.byParent[c.CategoryID] {
			if seen[child.CategoryID] {
				continue
			}
			seen[child.CategoryID] = true
			node.Children = append(node.Children, build(child, seen))
		}
		return node
	}

	nodes := make([]CategoryNode, 0, len(t.roots))
	for _, root := range t.roots {
		nodes = append(nodes, build(root, map[int]bool{root.CategoryID: true}))
	}
	return nodes
}
