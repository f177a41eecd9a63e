package models

// Category is a top-level grouping of courses in the catalog.
// Deleting a category removes all of its courses in the same transaction;
// there is no foreign-key cascade at the database level.
type Category struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name" json:"name" validate:"required"`
}

// TableName specifies the static table name for GORM.
// Required to override GORM's default pluralization behavior.
func (Category) TableName() string {
	return "category"
}
