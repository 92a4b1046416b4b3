package models

import "time"

// Post is an image post created by a user. The UUID is the external
// identifier exposed over HTTP; Image holds the stored blob name.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	UUID      string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Image     string    `gorm:"size:512;not null" json:"image"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// PostView is the wire representation of a post, optionally carrying
// the owner's public summary on detail endpoints.
type PostView struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Text      string         `json:"text"`
	UUID      string         `json:"uuid"`
	Image     string         `json:"image"`
	UserID    uint           `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	User      *PublicSummary `json:"user,omitempty"`
}

// View projects the post for responses. withOwner controls whether the
// owner summary is embedded.
func (p Post) View(withOwner bool) PostView {
	v := PostView{
		ID:        p.ID,
		Title:     p.Title,
		Text:      p.Text,
		UUID:      p.UUID,
		Image:     p.Image,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
	}
	if withOwner {
		s := p.User.Summary()
		v.User = &s
	}
	return v
}
