package models

import "time"

// NewsItem is one card of the "Novedades Reybanpac" carousel on the home screen.
type NewsItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	ImageURL  string    `json:"imageUrl"`
	Position  int       `gorm:"index" json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
