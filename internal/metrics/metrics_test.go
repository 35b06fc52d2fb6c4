package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNormalizeRoute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"/health", "/health"},
		{"/api/travel-packages", "/api/travel-packages"},
		{"/api/travel-packages/abc-123", "/api/travel-packages/{id}"},
		{"/api/travel-packages/search", "/api/travel-packages/search"},
		{"/api/travel-packages/category/mare", "/api/travel-packages/category"},
		{"/api/bookings/abc-123", "/api/bookings/{id}"},
		{"/api/bookings/abc-123/status", "/api/bookings/{id}"},
		{"/api/bookings/create-payment-intent", "/api/bookings/create-payment-intent"},
		{"/api/bookings/webhook", "/api/bookings/webhook"},
		{"/api/saved-packages/my-packages", "/api/saved-packages/my-packages"},
		{"/api/saved-packages/itinerary", "/api/saved-packages/itinerary"},
		{"/api/preferences", "/api/preferences"},
	}

	for _, tc := range cases {
		if got := normalizeRoute(tc.in); got != tc.want {
			t.Errorf("normalizeRoute(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMiddleware_RecordsRequest(t *testing.T) {
	t.Parallel()

	collector := NewCollector()

	handler := collector.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}

	body := scrape(t, collector)
	if !strings.Contains(body, `http_requests_total{method="POST",route="/api/bookings",status="201"} 1`) {
		t.Errorf("expected request counter in scrape output, got:\n%s", body)
	}
	if !strings.Contains(body, "http_request_duration_seconds") {
		t.Error("expected duration histogram in scrape output")
	}
}

func TestObserveTravelAPI(t *testing.T) {
	t.Parallel()

	collector := NewCollector()
	collector.ObserveTravelAPI("search", "success")
	collector.ObserveTravelAPI("search", "error")
	collector.ObserveTravelAPI("search", "error")

	body := scrape(t, collector)
	if !strings.Contains(body, `travel_api_requests_total{operation="search",outcome="error"} 2`) {
		t.Errorf("expected travel API counter in scrape output, got:\n%s", body)
	}
}

func TestObserveBookingAndPayment(t *testing.T) {
	t.Parallel()

	collector := NewCollector()
	collector.ObserveBooking("pending")
	collector.ObserveBooking("confirmed")
	collector.ObservePayment("succeeded")

	body := scrape(t, collector)
	if !strings.Contains(body, `bookings_total{status="pending"} 1`) {
		t.Errorf("expected booking counter in scrape output, got:\n%s", body)
	}
	if !strings.Contains(body, `payments_total{outcome="succeeded"} 1`) {
		t.Errorf("expected payment counter in scrape output, got:\n%s", body)
	}
}

func scrape(t *testing.T, collector *Collector) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected scrape status 200, got %d", rr.Code)
	}
	return rr.Body.String()
}
