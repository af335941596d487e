package dto

type MovieRequest struct {
	Title      string `json:"title"`
	DirectorID int64  `json:"director_id"`
	Year       string `json:"year"`
}

type DirectorRequest struct {
	Name      string  `json:"name"`
	BirthYear *string `json:"birthYear"`
}

type DeletedResponse struct {
	DeletedID int64 `json:"deletedID"`
}
