package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

func TestCatalog_ListTours(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tours" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id":"t1","name":"Backwater Cruise","price":5000,"duration":"3 days","imageUrl":"http://img/1.jpg"},
			{"_id":"t2","name":"Desert Safari","price":8000}
		]`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second, zerolog.Nop())
	tours, err := c.ListTours(context.Background())
	if err != nil {
		t.Fatalf("list tours: %v", err)
	}
	if len(tours) != 2 {
		t.Fatalf("expected 2 tours, got %d", len(tours))
	}
	if tours[0].ID != "t1" || tours[0].UnitPrice != 5000 || tours[0].ImageURL != "http://img/1.jpg" {
		t.Fatalf("payload mapping broken: %+v", tours[0])
	}
}

func TestCatalog_GetTour(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/tours/t1":
			_, _ = w.Write([]byte(`{"_id":"t1","name":"Backwater Cruise","price":5000}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second, zerolog.Nop())

	tour, err := c.GetTour(context.Background(), "t1")
	if err != nil {
		t.Fatalf("get tour: %v", err)
	}
	if tour.Name != "Backwater Cruise" || tour.UnitPrice != 5000 {
		t.Fatalf("unexpected tour: %+v", tour)
	}

	// An empty document from the backend means the tour does not exist.
	if _, err := c.GetTour(context.Background(), "missing"); !errors.Is(err, domain.ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
}

func TestCatalog_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.ListTours(context.Background()); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
