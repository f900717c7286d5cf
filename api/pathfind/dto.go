// Package pathfindapi serves grid searches over HTTP.
package pathfindapi

import (
	"github.com/google/uuid"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/playback"
	"github.com/thalath/gridpath/search"
)

// SearchRequest describes one grid layout and the algorithm to run on it.
type SearchRequest struct {
	Width     int          `json:"width" binding:"required,min=1,max=512"`
	Height    int          `json:"height" binding:"required,min=1,max=512"`
	Start     *grid.Coord  `json:"start" binding:"required"`
	Goal      *grid.Coord  `json:"goal" binding:"required"`
	Walls     []grid.Coord `json:"walls"`
	Algorithm string       `json:"algorithm"` // empty selects the controller default
}

// SearchResponse carries a completed search and its replay.
type SearchResponse struct {
	ID        uuid.UUID        `json:"id"`
	Algorithm search.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Cost      int              `json:"cost"`
	Expanded  int              `json:"expanded"`
	Visited   []grid.Coord     `json:"visited"`
	Path      []grid.Coord     `json:"path"`
	Events    []playback.Event `json:"events"`
}

// AlgorithmsResponse lists the selectable algorithms.
type AlgorithmsResponse struct {
	Algorithms []search.Algorithm `json:"algorithms"`
	Default    search.Algorithm   `json:"default"`
}
