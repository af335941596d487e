package models

// Director is a film director.
type Director struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthYear *string `json:"birthYear"`
}

// Movie is a catalog entry joined with its director's name.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Year         string  `json:"year"`
	DirectorID   *int64  `json:"director_id"`
	DirectorName *string `json:"director_name"`
}
