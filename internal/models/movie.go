package models

import (
	"time"

	"gorm.io/gorm"
)

// Media formats accepted for a catalog item.
const (
	MediaTypeDVD    = "DVD"
	MediaTypeBluRay = "BluRay"
	MediaTypeVHS    = "VHS"
)

type Movie struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	UniqueCode       string         `gorm:"size:8;index;not null" json:"uniqueCode" example:"MB7K2X9A"`
	Title            string         `gorm:"not null;index" json:"title" example:"Cidade de Deus"`
	OriginalTitle    string         `json:"originalTitle,omitempty" example:"City of God"`
	Overview         string         `gorm:"type:text" json:"overview,omitempty"`
	Year             int            `gorm:"index;not null" json:"year" example:"2002"`
	MediaType        string         `gorm:"size:10;index;not null" json:"mediaType" example:"DVD"`
	ShelfCode        string         `json:"shelfCode" example:"A3"`
	CoverURL         string         `json:"coverUrl,omitempty"`
	TrailerURL       string         `json:"trailerUrl,omitempty"`
	ProductionInfo   string         `json:"productionInfo,omitempty"`
	Country          string         `gorm:"index" json:"country,omitempty" example:"Brasil"`
	CountryFlag      string         `json:"countryFlag,omitempty"`
	OriginalLanguage string         `gorm:"index" json:"originalLanguage,omitempty" example:"pt"`
	Runtime          *int           `json:"runtime,omitempty" example:"130"`
	Rating           *float64       `gorm:"index" json:"rating,omitempty" example:"8.7"`
	WatchedAt        *time.Time     `gorm:"index" json:"watchedAt,omitempty"`
	Genres           []Genre        `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	CreatedAt        time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// ValidMediaType reports whether mt is one of the accepted formats.
func ValidMediaType(mt string) bool {
	return mt == MediaTypeDVD || mt == MediaTypeBluRay || mt == MediaTypeVHS
}
