package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/kisanmitra/kisanmitra/internal/domain"
)

// GovQueryRepository handles government query persistence
type GovQueryRepository struct {
	db *DB
}

// NewGovQueryRepository creates a new government query repository
func NewGovQueryRepository(db *DB) *GovQueryRepository {
	return &GovQueryRepository{db: db}
}

// Create stores a submitted query
func (r *GovQueryRepository) Create(query *domain.GovQuery) error {
	if query.ID == "" {
		query.ID = uuid.New().String()
	}
	query.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO gov_queries (id, name, location, query_type, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, query.ID, query.Name, query.Location, query.QueryType, query.Message, query.CreatedAt)

	return err
}

// List retrieves all submitted queries, newest first
func (r *GovQueryRepository) List() ([]*domain.GovQuery, error) {
	rows, err := r.db.Query(`
		SELECT id, name, location, query_type, message, created_at
		FROM gov_queries
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []*domain.GovQuery
	for rows.Next() {
		q := &domain.GovQuery{}
		if err := rows.Scan(&q.ID, &q.Name, &q.Location, &q.QueryType, &q.Message, &q.CreatedAt); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	return queries, rows.Err()
}
