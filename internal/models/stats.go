package models

import "time"

// StatBucket is a generic label/count pair used by the grouped aggregates.
type StatBucket struct {
	Label string `json:"label" example:"DVD"`
	Value int64  `json:"value" example:"42"`
}

type RuntimeStats struct {
	TotalMinutes    int64   `json:"totalMinutes" example:"10340"`
	AverageMinutes  float64 `json:"averageMinutes" example:"112.4"`
	ShortestMinutes int64   `json:"shortestMinutes" example:"74"`
	LongestMinutes  int64   `json:"longestMinutes" example:"201"`
	Count           int64   `json:"count" example:"92"`
}

// RatingBand is one whole-point histogram band, [From, From+1), with ratings of
// exactly 10 folded into the top band.
type RatingBand struct {
	Band  int   `json:"band" example:"8"`
	Count int64 `json:"count" example:"17"`
}

type MonthlyCount struct {
	Month string `json:"month" example:"2026-08"`
	Count int64  `json:"count" example:"6"`
}

type CollectionStats struct {
	TotalMovies       int64          `json:"totalMovies" example:"120"`
	Watched           int64          `json:"watched" example:"80"`
	Unwatched         int64          `json:"unwatched" example:"40"`
	WatchedPercentage int            `json:"watchedPercentage" example:"67"`
	ByMediaType       []StatBucket   `json:"byMediaType"`
	ByYear            []StatBucket   `json:"byYear"`
	HighRated         int64          `json:"highRated" example:"22"`
	WatchedLast30Days int64          `json:"watchedLast30Days" example:"5"`
	ByGenre           []StatBucket   `json:"byGenre"`
	ByCountry         []StatBucket   `json:"byCountry"`
	ByLanguage        []StatBucket   `json:"byLanguage"`
	Runtime           RuntimeStats   `json:"runtime"`
	RatingHistogram   []RatingBand   `json:"ratingHistogram"`
	WatchedByMonth    []MonthlyCount `json:"watchedByMonth"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}
