package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	repo "github.com/sayalimunde/mini-lms/internal/repository"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var e APIError
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return e
}

func TestWriteDomainErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDomainError(rec, fmt.Errorf("get course: %w", repo.ErrNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d", rec.Code)
	}
	if e := decode(t, rec); e.Code != "not_found" {
		t.Fatalf("code = %q", e.Code)
	}
}

func TestWriteDomainErrorMissingIndexIsDistinct(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &repo.MissingIndexError{
		Query:       "lessons by course_id ordered by order",
		Remediation: "https://example.com/fix",
		Err:         errors.New("relation does not exist"),
	}
	WriteDomainError(rec, fmt.Errorf("list lessons: %w", err))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	e := decode(t, rec)
	if e.Code != "missing_index" {
		t.Fatalf("missing-index must not collapse into generic failure: %q", e.Code)
	}
	details, ok := e.Details.(map[string]any)
	if !ok {
		t.Fatalf("details = %T", e.Details)
	}
	if details["remediation"] != "https://example.com/fix" {
		t.Fatalf("remediation = %v", details["remediation"])
	}
}

func TestWriteDomainErrorGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDomainError(rec, errors.New("connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	if e := decode(t, rec); e.Code != "internal_error" {
		t.Fatalf("code = %q", e.Code)
	}
}
