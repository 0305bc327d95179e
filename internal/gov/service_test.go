package gov

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewService(repository.NewGovQueryRepository(db))
}

func TestSubmitStoresQuery(t *testing.T) {
	s := newTestService(t)

	query, err := s.Submit(domain.SubmitGovQueryRequest{
		Name:      "  Ramesh Kumar ",
		Location:  "Indore",
		QueryType: "Subsidy Request",
		Message:   "PM-Kisan installment not received",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if query.ID == "" {
		t.Error("stored query should get an ID")
	}
	if query.Name != "Ramesh Kumar" {
		t.Errorf("fields should be trimmed, got %q", query.Name)
	}

	queries, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(queries) != 1 || queries[0].ID != query.ID {
		t.Errorf("expected the stored query back, got %+v", queries)
	}
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	s := newTestService(t)

	reqs := []domain.SubmitGovQueryRequest{
		{Name: "", Location: "Indore", QueryType: "Other", Message: "hello"},
		{Name: "Ramesh", Location: "   ", QueryType: "Other", Message: "hello"},
		{Name: "Ramesh", Location: "Indore", QueryType: "", Message: "hello"},
		{Name: "Ramesh", Location: "Indore", QueryType: "Other", Message: "  "},
	}
	for i, req := range reqs {
		if _, err := s.Submit(req); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}

	queries, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(queries) != 0 {
		t.Errorf("rejected submissions must not be stored, got %d", len(queries))
	}
}

func TestSubmitRejectsUnknownQueryType(t *testing.T) {
	s := newTestService(t)

	if _, err := s.Submit(domain.SubmitGovQueryRequest{
		Name:      "Ramesh",
		Location:  "Indore",
		QueryType: "Tax Refund",
		Message:   "hello",
	}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for an unknown query type, got %v", err)
	}

	queries, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(queries) != 0 {
		t.Errorf("rejected submission must not be stored, got %d", len(queries))
	}
}

func TestSubmitAcceptsLocalizedQueryType(t *testing.T) {
	s := newTestService(t)

	if _, err := s.Submit(domain.SubmitGovQueryRequest{
		Name:      "रमेश",
		Location:  "इंदौर",
		QueryType: "शिकायत",
		Message:   "पानी की आपूर्ति की समस्या",
		Language:  "hi",
	}); err != nil {
		t.Errorf("localized query type labels should be accepted, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestService(t)

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := s.Submit(domain.SubmitGovQueryRequest{
			Name:      "Ramesh",
			Location:  "Indore",
			QueryType: "Other",
			Message:   msg,
		}); err != nil {
			t.Fatalf("Submit(%q) failed: %v", msg, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	queries, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(queries) != 3 {
		t.Fatalf("expected 3 queries, got %d", len(queries))
	}
	if queries[0].Message != "third" || queries[2].Message != "first" {
		t.Errorf("expected newest first, got %q, %q, %q",
			queries[0].Message, queries[1].Message, queries[2].Message)
	}
}

func TestAdvisoriesAreLocalized(t *testing.T) {
	s := newTestService(t)

	en := s.Advisories("en")
	hi := s.Advisories("hi")
	if len(en) == 0 || len(hi) == 0 {
		t.Fatal("advisories should exist for English and Hindi")
	}
	if en[0].Title == hi[0].Title {
		t.Error("Hindi advisories should be localized")
	}
	if got := s.Advisories("zz"); len(got) == 0 || got[0].Title != en[0].Title {
		t.Error("unknown codes should fall back to English advisories")
	}
}
