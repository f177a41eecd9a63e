package models

// Course describes one learning resource, always owned by exactly one category.
// Level, Description and Provider receive defaults when submitted blank;
// URL and ImageURL may stay empty. CategoryID is set at creation and never
// changed by edits. The json tags define the export record shape.
type Course struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name" json:"name" validate:"required"`
	Level       string `gorm:"column:level" json:"level"`
	URL         string `gorm:"column:url" json:"url"`
	ImageURL    string `gorm:"column:image_url" json:"image_url"`
	Description string `gorm:"column:description" json:"description"`
	Provider    string `gorm:"column:provider" json:"provider"`
	CategoryID  uint   `gorm:"column:category_id" json:"category_id"`
}

// TableName specifies the static table name for GORM.
func (Course) TableName() string {
	return "course"
}
