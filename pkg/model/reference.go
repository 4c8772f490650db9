package model

type FlavorCategory string

const (
	FlavorCategoryFruit  FlavorCategory = "fruit"
	FlavorCategorySpice  FlavorCategory = "spice"
	FlavorCategorySweet  FlavorCategory = "sweet"
	FlavorCategoryWood   FlavorCategory = "wood"
	FlavorCategorySmoke  FlavorCategory = "smoke"
	FlavorCategoryFloral FlavorCategory = "floral"
	FlavorCategoryCereal FlavorCategory = "cereal"
	FlavorCategoryNut    FlavorCategory = "nut"
	FlavorCategoryHerbal FlavorCategory = "herbal"
	FlavorCategoryOther  FlavorCategory = "other"
)

type Origin struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

type Region struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"uniqueIndex:idx_region_origin;not null"`
	OriginID uint   `gorm:"uniqueIndex:idx_region_origin;not null"`

	Origin Origin `gorm:"foreignKey:OriginID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type WhiskyType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (WhiskyType) TableName() string {
	return "types"
}

type FlavorTag struct {
	ID       uint           `gorm:"primaryKey"`
	Name     string         `gorm:"uniqueIndex;not null"`
	Category FlavorCategory `gorm:"not null"`
}
