package handlers

import "videoteca-backend/internal/models"

type MovieRequest struct {
	Title            string   `json:"title"`
	OriginalTitle    string   `json:"originalTitle"`
	Overview         string   `json:"overview"`
	Year             int      `json:"year"`
	MediaType        string   `json:"mediaType"`
	ShelfCode        string   `json:"shelfCode"`
	CoverURL         string   `json:"coverUrl"`
	ProductionInfo   string   `json:"productionInfo"`
	Rating           *float64 `json:"rating"`
	GenreIDs         []uint   `json:"genreIds"`
	UniqueCode       string   `json:"uniqueCode"`
	TrailerURL       string   `json:"trailerUrl"`
	Runtime          *int     `json:"runtime"`
	Country          string   `json:"country"`
	CountryFlag      string   `json:"countryFlag"`
	OriginalLanguage string   `json:"originalLanguage"`
}

// MovieUpdateRequest takes a single genreId; the update replaces the whole
// genre set with it.
type MovieUpdateRequest struct {
	Title            string   `json:"title"`
	OriginalTitle    string   `json:"originalTitle"`
	Overview         string   `json:"overview"`
	Year             int      `json:"year"`
	MediaType        string   `json:"mediaType"`
	ShelfCode        string   `json:"shelfCode"`
	CoverURL         string   `json:"coverUrl"`
	ProductionInfo   string   `json:"productionInfo"`
	Rating           *float64 `json:"rating"`
	GenreID          uint     `json:"genreId"`
	TrailerURL       string   `json:"trailerUrl"`
	Runtime          *int     `json:"runtime"`
	Country          string   `json:"country"`
	CountryFlag      string   `json:"countryFlag"`
	OriginalLanguage string   `json:"originalLanguage"`
}

func (r *MovieRequest) toModel() *models.Movie {
	return &models.Movie{
		Title:            r.Title,
		OriginalTitle:    r.OriginalTitle,
		Overview:         r.Overview,
		Year:             r.Year,
		MediaType:        r.MediaType,
		ShelfCode:        r.ShelfCode,
		CoverURL:         r.CoverURL,
		ProductionInfo:   r.ProductionInfo,
		Rating:           r.Rating,
		UniqueCode:       r.UniqueCode,
		TrailerURL:       r.TrailerURL,
		Runtime:          r.Runtime,
		Country:          r.Country,
		CountryFlag:      r.CountryFlag,
		OriginalLanguage: r.OriginalLanguage,
	}
}

func (r *MovieUpdateRequest) toModel() *models.Movie {
	return &models.Movie{
		Title:            r.Title,
		OriginalTitle:    r.OriginalTitle,
		Overview:         r.Overview,
		Year:             r.Year,
		MediaType:        r.MediaType,
		ShelfCode:        r.ShelfCode,
		CoverURL:         r.CoverURL,
		ProductionInfo:   r.ProductionInfo,
		Rating:           r.Rating,
		TrailerURL:       r.TrailerURL,
		Runtime:          r.Runtime,
		Country:          r.Country,
		CountryFlag:      r.CountryFlag,
		OriginalLanguage: r.OriginalLanguage,
	}
}

type GenreRequest struct {
	Name string `json:"name"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
