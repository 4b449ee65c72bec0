package models

// Dish is a menu item. Price is in minor currency units.
type Dish struct {
	ID          string `json:"id" yaml:"id" gorm:"primaryKey;column:id"`
	Name        string `json:"name" yaml:"name" gorm:"column:name;not null"`
	Description string `json:"description" yaml:"description" gorm:"column:description;not null"`
	Price       int    `json:"price" yaml:"price" gorm:"column:price;not null"`
	ImageURL    string `json:"image_url" yaml:"image_url" gorm:"column:image_url;not null"`
	Seq         int64  `json:"-" yaml:"-" gorm:"column:seq;index"` // insertion position
}
