package model

// Group is a topical community posts may optionally belong to.
// The slug is the URL key.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string `gorm:"type:varchar(200);not null;uniqueIndex:idx_group_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}
