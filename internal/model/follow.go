package model

import "time"

// Follow is a directed follower -> author relationship. The pair is
// unique and self-follows are rejected at the database level, which is
// what makes concurrent duplicate-follow attempts safe without locking.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_author;check:chk_no_self_follow,follower_id <> author_id" json:"follower_id"`
	AuthorID   uint      `gorm:"not null;index;uniqueIndex:idx_follower_author" json:"author_id"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Author     User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
