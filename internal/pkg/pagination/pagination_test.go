package pagination

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func getWindow(t *testing.T, query string) (*Window, error) {
	t.Helper()

	var window *Window
	var windowErr error

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		window, windowErr = GetWindow(c)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	return window, windowErr
}

func TestGetWindow(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Window
		wantErr bool
	}{
		{"defaults", "", Window{Offset: 0, Limit: DefaultLimit}, false},
		{"explicit values", "offset=20&limit=5", Window{Offset: 20, Limit: 5}, false},
		{"negative offset clamps to zero", "offset=-3", Window{Offset: 0, Limit: DefaultLimit}, false},
		{"zero limit falls back to default", "limit=0", Window{Offset: 0, Limit: DefaultLimit}, false},
		{"limit capped", "limit=5000", Window{Offset: 0, Limit: MaxLimit}, false},
		{"non-numeric offset", "offset=abc", Window{}, true},
		{"non-numeric limit", "limit=ten", Window{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getWindow(t, tt.query)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("GetWindow() error = %v, want ErrInvalidValue", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetWindow() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("GetWindow() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestWindowSlice(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		length   int
		wantFrom int
		wantTo   int
	}{
		{"full window inside", Window{Offset: 0, Limit: 10}, 5, 0, 5},
		{"middle window", Window{Offset: 2, Limit: 2}, 10, 2, 4},
		{"window past the end", Window{Offset: 8, Limit: 10}, 10, 8, 10},
		{"offset past the end", Window{Offset: 20, Limit: 10}, 10, 10, 10},
		{"empty slice", Window{Offset: 0, Limit: 10}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.window.Slice(tt.length)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("Slice(%d) = (%d, %d), want (%d, %d)", tt.length, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}
