package model

import (
	"time"

	"github.com/google/uuid"
)

type PriceRange string

const (
	PriceRangeUpTo500   PriceRange = "₺0-₺500"
	PriceRangeUpTo1000  PriceRange = "₺500-₺1000"
	PriceRangeUpTo1500  PriceRange = "₺1000-₺1500"
	PriceRangeUpTo2000  PriceRange = "₺1500-₺2000"
	PriceRangeUpTo2500  PriceRange = "₺2000-₺2500"
	PriceRangeAbove2500 PriceRange = "₺2500+"
)

// PriceRanges lists the labels in display order.
var PriceRanges = []PriceRange{
	PriceRangeUpTo500, PriceRangeUpTo1000, PriceRangeUpTo1500,
	PriceRangeUpTo2000, PriceRangeUpTo2500, PriceRangeAbove2500,
}

func (p PriceRange) Valid() bool {
	for _, known := range PriceRanges {
		if p == known {
			return true
		}
	}

	return false
}

type Whisky struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	Distillery      *string
	OriginID        uint `gorm:"not null"`
	RegionID        *uint
	TypeID          uint    `gorm:"not null"`
	ABV             float64 `gorm:"column:abv;not null"`
	Age             *int
	AgeStatement    bool       `gorm:"not null"`
	PriceRange      PriceRange `gorm:"not null"`
	PurchaseDate    *time.Time `gorm:"type:date"`
	ImageURL        *string
	OverallRating   int       `gorm:"not null"`
	BodyRating      int       `gorm:"not null"`
	RichnessRating  int       `gorm:"not null"`
	SweetnessRating int       `gorm:"not null"`
	SmokinessRating int       `gorm:"not null"`
	FinishRating    int       `gorm:"not null"`
	Notes           string    `gorm:"not null"`
	TastingDate     time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	IsWhiskyOfWeek  bool `gorm:"column:is_whisky_of_week;not null"`
	IsTop5          bool `gorm:"column:is_top_5;not null"`

	Origin Origin     `gorm:"foreignKey:OriginID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Region *Region    `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Type   WhiskyType `gorm:"foreignKey:TypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Whisky) TableName() string {
	return "whiskies"
}

type WhiskyFlavorTag struct {
	WhiskyID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FlavorTagID uint      `gorm:"primaryKey"`

	Whisky    Whisky    `gorm:"foreignKey:WhiskyID;constraint:OnDelete:CASCADE;"`
	FlavorTag FlavorTag `gorm:"foreignKey:FlavorTagID;constraint:OnDelete:CASCADE;"`
}

func (WhiskyFlavorTag) TableName() string {
	return "whisky_flavor_tags"
}
