// Package gov handles the government-services form: validated local
// submission of citizen queries plus the static advisories panel.
package gov

import (
	"fmt"
	"strings"

	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/i18n"
	"github.com/kisanmitra/kisanmitra/internal/repository"
)

// Service handles government query submission
type Service struct {
	repo *repository.GovQueryRepository
}

// NewService creates a gov service
func NewService(repo *repository.GovQueryRepository) *Service {
	return &Service{repo: repo}
}

// Submit validates and stores a citizen query. Submission is local only;
// nothing is forwarded anywhere.
func (s *Service) Submit(req domain.SubmitGovQueryRequest) (*domain.GovQuery, error) {
	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	queryType := strings.TrimSpace(req.QueryType)
	message := strings.TrimSpace(req.Message)

	if name == "" || location == "" || queryType == "" || message == "" {
		return nil, domain.ErrInvalidRequest
	}
	if !validQueryType(queryType) {
		return nil, domain.ErrInvalidRequest
	}

	query := &domain.GovQuery{
		Name:      name,
		Location:  location,
		QueryType: queryType,
		Message:   message,
	}
	if err := s.repo.Create(query); err != nil {
		return nil, fmt.Errorf("failed to store query: %w", err)
	}
	return query, nil
}

// validQueryType reports whether the submitted type appears in any
// language's query type table; the form submits the localized label
func validQueryType(queryType string) bool {
	for _, lang := range i18n.Languages() {
		for _, qt := range i18n.Lookup(lang.Code).Gov.QueryTypes {
			if qt == queryType {
				return true
			}
		}
	}
	return false
}

// List returns all submitted queries, newest first
func (s *Service) List() ([]*domain.GovQuery, error) {
	return s.repo.List()
}

// Advisories returns the localized government advisories for a language
func (s *Service) Advisories(languageCode string) []domain.Advisory {
	return i18n.Lookup(languageCode).Gov.DemoAdvisories
}
