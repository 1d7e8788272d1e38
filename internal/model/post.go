package model

import "time"

// Post is an authored article. The author is required and immutable;
// the group is optional and nulled out when the group is deleted so the
// post survives. No soft deletion anywhere in this schema.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Title     string    `gorm:"type:varchar(100)" json:"title,omitempty"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID   *uint     `gorm:"index" json:"group_id,omitempty"`
	Group     *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Image     string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
