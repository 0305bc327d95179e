package domain

import "time"

// GovQuery is a citizen query submitted through the government-services form
type GovQuery struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	QueryType string    `json:"query_type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitGovQueryRequest is the request to submit a government query
type SubmitGovQueryRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	QueryType string `json:"query_type" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language,omitempty"`
}

// Advisory is a government advisory shown alongside the query form
type Advisory struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
