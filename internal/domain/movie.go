package domain

import "time"

// Movie represents a single row of the movie catalog. Rows are written by the
// seed tool only; the API treats them as read-only.
type Movie struct {
	ID        int64
	Name      string
	Date      time.Time
	Score     float64
	Genre     string
	Overview  string
	Crew      string
	OrigTitle string
	Status    string
	OrigLang  string
	Budget    float64
	Revenue   float64
	Country   string
}
