package entities

type Project struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Status *string `json:"status"`
}
