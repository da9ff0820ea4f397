package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/quakeapi/server/internal/domain"
	"github.com/quakeapi/server/internal/repository/memory"
	"github.com/quakeapi/server/internal/service"
)

// failingRepo simulates an unreachable store
type failingRepo struct{}

var errConnRefused = errors.New("dial tcp 10.0.0.5:5432: connection refused")

func (failingRepo) FindByID(ctx context.Context, id int) (domain.Earthquake, error) {
	return domain.Earthquake{}, errConnRefused
}

func (failingRepo) FindByMinMagnitude(ctx context.Context, threshold float64) ([]domain.Earthquake, error) {
	return nil, errConnRefused
}

func (failingRepo) Health(ctx context.Context) error {
	return errConnRefused
}

// panickingRepo exercises the recover middleware
type panickingRepo struct{ failingRepo }

func (panickingRepo) FindByID(ctx context.Context, id int) (domain.Earthquake, error) {
	panic("driver bug")
}

func newTestApp(repo domain.EarthquakeRepository) *fiber.App {
	return NewApp(service.NewEarthquakeService(repo), Options{Banner: "Flask SQLAlchemy Lab 1"})
}

func doGet(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		t.Errorf("GET %s: expected JSON content type, got %q", path, ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body of %s failed: %v", path, err)
	}
	return resp.StatusCode, string(body)
}

func TestIndex(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository(nil))

	status, body := doGet(t, app, "/")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body != `{"message":"Flask SQLAlchemy Lab 1"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestGetEarthquake_Found(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository([]domain.Earthquake{
		{ID: 1, Magnitude: 5.5, Location: "Tokyo", Year: 2021},
	}))

	status, body := doGet(t, app, "/earthquakes/1")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body != `{"id":1,"magnitude":5.5,"location":"Tokyo","year":2021}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestGetEarthquake_NotFound(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository([]domain.Earthquake{
		{ID: 1, Magnitude: 5.5, Location: "Tokyo", Year: 2021},
	}))

	for path, want := range map[string]string{
		"/earthquakes/99": `{"message":"Earthquake 99 not found."}`,
		"/earthquakes/0":  `{"message":"Earthquake 0 not found."}`,
	} {
		status, body := doGet(t, app, path)
		if status != fiber.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, status)
		}
		if body != want {
			t.Errorf("GET %s: expected %s, got %s", path, want, body)
		}
	}
}

func TestGetEarthquakesByMagnitude(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository([]domain.Earthquake{
		{ID: 3, Magnitude: 4.0, Location: "Lima", Year: 2001},
		{ID: 2, Magnitude: 6.0, Location: "Osaka", Year: 1995},
		{ID: 1, Magnitude: 5.5, Location: "Tokyo", Year: 2021},
	}))

	status, body := doGet(t, app, "/earthquakes/magnitude/5.0")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	want := `{"count":2,"quakes":[` +
		`{"id":1,"magnitude":5.5,"location":"Tokyo","year":2021},` +
		`{"id":2,"magnitude":6,"location":"Osaka","year":1995}]}`
	if body != want {
		t.Errorf("expected %s, got %s", want, body)
	}
}

func TestGetEarthquakesByMagnitude_Properties(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository(domain.SampleEarthquakes()))

	for _, m := range []string{"0", "8.4", "8.55", "9.2", "9.5", "10", "-1.5"} {
		status, body := doGet(t, app, "/earthquakes/magnitude/"+m)
		if status != fiber.StatusOK {
			t.Fatalf("GET magnitude %s: expected 200, got %d", m, status)
		}

		var list domain.QuakeList
		if err := json.Unmarshal([]byte(body), &list); err != nil {
			t.Fatalf("decode failed: %v", err)
		}

		if list.Count != len(list.Quakes) {
			t.Errorf("magnitude %s: count %d != len %d", m, list.Count, len(list.Quakes))
		}
		for i, q := range list.Quakes {
			if i > 0 && list.Quakes[i-1].ID >= q.ID {
				t.Errorf("magnitude %s: quakes not ordered by id: %v", m, list.Quakes)
			}
		}
	}

	// Inclusive threshold: 9.2 matches the Alaska 1964 record exactly
	_, body := doGet(t, app, "/earthquakes/magnitude/9.2")
	if body != `{"count":2,"quakes":[`+
		`{"id":1,"magnitude":9.5,"location":"Chile","year":1960},`+
		`{"id":2,"magnitude":9.2,"location":"Alaska","year":1964}]}` {
		t.Errorf("unexpected body for inclusive threshold: %s", body)
	}
}

func TestGetEarthquakesByMagnitude_Empty(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository(nil))

	status, body := doGet(t, app, "/earthquakes/magnitude/0.0")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body != `{"count":0,"quakes":[]}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestRepeatedRequestsAreIdentical(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository(domain.SampleEarthquakes()))

	for _, path := range []string{"/", "/earthquakes/2", "/earthquakes/42", "/earthquakes/magnitude/8.5"} {
		_, first := doGet(t, app, path)
		_, second := doGet(t, app, path)
		if first != second {
			t.Errorf("GET %s: bodies differ: %s vs %s", path, first, second)
		}
	}
}

func TestMalformedParameters(t *testing.T) {
	app := newTestApp(memory.NewMemoryRepository(domain.SampleEarthquakes()))

	paths := []string{
		"/earthquakes/abc",
		"/earthquakes/1.5",
		"/earthquakes/magnitude",
		"/earthquakes/magnitude/abc",
		"/earthquakes/magnitude/5.0.1",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			status, body := doGet(t, app, path)
			if status != fiber.StatusNotFound {
				t.Errorf("expected 404, got %d", status)
			}

			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(body), &payload); err != nil {
				t.Fatalf("body is not JSON: %s", body)
			}
			if payload["error"] != true {
				t.Errorf("expected error flag, got %s", body)
			}
		})
	}
}

func TestStoreUnavailable(t *testing.T) {
	app := newTestApp(failingRepo{})

	for _, path := range []string{"/earthquakes/1", "/earthquakes/magnitude/5.0"} {
		status, body := doGet(t, app, path)
		if status != fiber.StatusInternalServerError {
			t.Errorf("GET %s: expected 500, got %d", path, status)
		}
		if strings.Contains(body, "connection refused") {
			t.Errorf("GET %s: driver error leaked: %s", path, body)
		}
		if !strings.Contains(body, "Failed to fetch earthquake data") {
			t.Errorf("GET %s: unexpected body: %s", path, body)
		}
	}

	// The banner does not depend on the store
	if status, _ := doGet(t, app, "/"); status != fiber.StatusOK {
		t.Errorf("expected 200 from index, got %d", status)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	app := newTestApp(panickingRepo{})

	status, body := doGet(t, app, "/earthquakes/1")
	if status != fiber.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if body != `{"error":true,"message":"Internal Server Error"}` {
		t.Errorf("unexpected body: %s", body)
	}
}
