package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MainBanner is the single hero image slot on the landing page. POST always
// replaces the one record that exists.
type MainBanner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url;not null;type:text"`
	Link      string    `json:"link" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (MainBanner) TableName() string { return "main_banners" }

func (b *MainBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// MainVideo is the single hero video slot.
type MainVideo struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VideoURL  string    `json:"videoUrl" gorm:"column:video_url;not null;type:text"`
	Link      string    `json:"link" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (MainVideo) TableName() string { return "main_videos" }

func (v *MainVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TextBanner is a strip banner; the image is optional.
type TextBanner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	Link      string    `json:"link" gorm:"type:text"`
	ImageURL  *string   `json:"imageUrl,omitempty" gorm:"column:image_url;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (TextBanner) TableName() string { return "text_banners" }

func (b *TextBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ScrollBanner is one slide of the scrolling banner strip.
type ScrollBanner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url;not null;type:text"`
	Link      string    `json:"link" gorm:"type:text"`
	SortOrder int       `json:"sortOrder" gorm:"column:sort_order;default:0;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ScrollBanner) TableName() string { return "scroll_banners" }

func (b *ScrollBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// SpotItem is one tile of the spotlight grid.
type SpotItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Link      string    `json:"link" gorm:"type:text"`
	ImageURL  *string   `json:"imageUrl,omitempty" gorm:"column:image_url;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SpotItem) TableName() string { return "spot_items" }

func (s *SpotItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
