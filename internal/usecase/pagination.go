package usecase

import "registry/internal/domain/entity"

// ProfilePage is one page of a registry listing.
type ProfilePage struct {
	Items  []*entity.Profile `json:"items"`
	Total  int64             `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
}

// EventPage is one page of the event feed, newest first.
type EventPage struct {
	Items  []*entity.Event `json:"items"`
	Total  int64           `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}
