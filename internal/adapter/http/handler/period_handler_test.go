package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/domain"
)

type periodServiceStub struct {
	branchesFn func(ctx context.Context) ([]*domain.Branch, error)
	periodsFn  func(ctx context.Context) ([]*domain.PostingPeriod, error)
	getFn      func(ctx context.Context, id string) (*domain.PostingPeriod, error)
	closeFn    func(ctx context.Context, id string) (*domain.PostingPeriod, error)
}

func (s *periodServiceStub) ListBranches(ctx context.Context) ([]*domain.Branch, error) {
	return s.branchesFn(ctx)
}

func (s *periodServiceStub) ListPeriods(ctx context.Context) ([]*domain.PostingPeriod, error) {
	return s.periodsFn(ctx)
}

func (s *periodServiceStub) GetPeriod(ctx context.Context, id string) (*domain.PostingPeriod, error) {
	return s.getFn(ctx, id)
}

func (s *periodServiceStub) ClosePeriod(ctx context.Context, id string) (*domain.PostingPeriod, error) {
	return s.closeFn(ctx, id)
}

func TestPeriodHandler_ListBranches(t *testing.T) {
	handler := NewPeriodHandler(&periodServiceStub{
		branchesFn: func(ctx context.Context) ([]*domain.Branch, error) {
			return []*domain.Branch{{ID: "branch-hq", Name: "Headquarters"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/branches", nil)
	rec := httptest.NewRecorder()

	handler.ListBranches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []dto.BranchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "branch-hq" {
		t.Fatalf("unexpected branches: %+v", resp)
	}
}

func TestPeriodHandler_ClosePeriod_Success(t *testing.T) {
	closedAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	handler := NewPeriodHandler(&periodServiceStub{
		closeFn: func(ctx context.Context, id string) (*domain.PostingPeriod, error) {
			return &domain.PostingPeriod{
				ID:       id,
				Name:     "January 2024",
				Status:   domain.PeriodStatusClosed,
				ClosedAt: &closedAt,
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/periods/2024-01/close", nil), "id", "2024-01")
	rec := httptest.NewRecorder()

	handler.ClosePeriod(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.PeriodResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "closed" || resp.ClosedAt == nil {
		t.Fatalf("expected closed period, got %+v", resp)
	}
}

func TestPeriodHandler_ClosePeriod_AlreadyClosed(t *testing.T) {
	handler := NewPeriodHandler(&periodServiceStub{
		closeFn: func(ctx context.Context, id string) (*domain.PostingPeriod, error) {
			return nil, domain.ErrPeriodAlreadyClosed
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/periods/2023-12/close", nil), "id", "2023-12")
	rec := httptest.NewRecorder()

	handler.ClosePeriod(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestPeriodHandler_GetPeriod_NotFound(t *testing.T) {
	handler := NewPeriodHandler(&periodServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.PostingPeriod, error) {
			return nil, domain.ErrPeriodNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/periods/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.GetPeriod(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
