package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ProductSize is one size row with its remaining stock.
type ProductSize struct {
	Size  int `json:"size" binding:"required" example:"270"`
	Stock int `json:"stock" binding:"min=0" example:"12"`
}

// SizeList is stored as a jsonb column.
type SizeList []ProductSize

func (s SizeList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SizeList) Scan(value interface{}) error {
	if value == nil {
		*s = SizeList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for SizeList")
	}
	return json.Unmarshal(b, s)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is the catalog record. Prices are whole won, so they stay integer
// end to end. Category1/Category2 are display labels from the menu tree and
// MenuID points at the leaf menu node; the reference is not kept in sync
// when menu nodes are deleted.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null;index"`
	Slug        string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       int64     `json:"price" gorm:"not null;check:price >= 0"`
	ImageURL    *string   `json:"imageUrl,omitempty" gorm:"column:image_url;type:text"`
	Category1   string    `json:"category1" gorm:"type:varchar(100);index"`
	Category2   string    `json:"category2" gorm:"type:varchar(100);index"`
	MenuID      int       `json:"menuId" gorm:"column:menu_id;index"`
	Sizes       SizeList  `json:"sizes" gorm:"type:jsonb;not null;default:'[]'"`
	Status      string    `json:"status" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	Views       int       `json:"views" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// StockForSize returns the stock for a given size, 0 when the size is not
// offered.
func (p *Product) StockForSize(size int) int {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s.Stock
		}
	}
	return 0
}

// FirstAvailableSize returns the first size with stock, or 0 when every size
// is sold out.
func (p *Product) FirstAvailableSize() int {
	for _, s := range p.Sizes {
		if s.Stock > 0 {
			return s.Size
		}
	}
	return 0
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Title       string        `json:"title" binding:"required" example:"Indoor Service Robot S1"`
	Slug        string        `json:"slug" binding:"required" example:"indoor-service-robot-s1"`
	Description string        `json:"description"`
	Price       int64         `json:"price" binding:"required,min=0" example:"129000"`
	ImageURL    *string       `json:"imageUrl,omitempty"`
	Category1   string        `json:"category1"`
	Category2   string        `json:"category2"`
	MenuID      int           `json:"menuId"`
	Sizes       []ProductSize `json:"sizes" binding:"dive"`
	Status      string        `json:"status" binding:"omitempty,oneof=Active Draft"`
}

type UpdateProductRequest struct {
	Title       *string        `json:"title"`
	Slug        *string        `json:"slug"`
	Description *string        `json:"description"`
	Price       *int64         `json:"price" binding:"omitempty,min=0"`
	ImageURL    *string        `json:"imageUrl"`
	Category1   *string        `json:"category1"`
	Category2   *string        `json:"category2"`
	MenuID      *int           `json:"menuId"`
	Sizes       *[]ProductSize `json:"sizes" binding:"omitempty,dive"`
	Status      *string        `json:"status" binding:"omitempty,oneof=Active Draft"`
}
