package middleware

import (
	"net/http/httptest"
	"testing"

	"foodgram/domain"
	jwtmock "foodgram/pkg/jwt/mock"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, optional bool) (*fiber.App, *jwtmock.MockJWTService) {
	ctrl := gomock.NewController(t)
	jwtService := jwtmock.NewMockJWTService(ctrl)
	m := NewMiddleware()

	auth := m.AuthMiddleware(jwtService)
	if optional {
		auth = m.OptionalAuthMiddleware(jwtService)
	}

	app := fiber.New()
	app.Get("/who", auth, func(c *fiber.Ctx) error {
		v := Viewer(c)
		return c.JSON(fiber.Map{"id": v.ID, "role": v.Role})
	})
	return app, jwtService
}

func request(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/who", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		optional bool
		header   string
		setup    func(j *jwtmock.MockJWTService)
		want     int
	}{
		{
			name: "MissingToken",
			want: fiber.StatusUnauthorized,
		},
		{
			name:   "InvalidToken",
			header: "Token broken",
			setup: func(j *jwtmock.MockJWTService) {
				j.EXPECT().GetUserIDByToken(gomock.Any(), "broken").Return(int64(0), "", domain.ErrTokenInvalid)
			},
			want: fiber.StatusUnauthorized,
		},
		{
			name:   "BearerToken",
			header: "Bearer good",
			setup: func(j *jwtmock.MockJWTService) {
				j.EXPECT().GetUserIDByToken(gomock.Any(), "good").Return(int64(3), domain.RoleUser, nil)
			},
			want: fiber.StatusOK,
		},
		{
			name:     "OptionalAnonymous",
			optional: true,
			want:     fiber.StatusOK,
		},
		{
			name:     "OptionalRevoked",
			optional: true,
			header:   "Token old",
			setup: func(j *jwtmock.MockJWTService) {
				j.EXPECT().GetUserIDByToken(gomock.Any(), "old").Return(int64(0), "", domain.ErrTokenRevoked)
			},
			want: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, j := newApp(t, tt.optional)
			if tt.setup != nil {
				tt.setup(j)
			}
			if got := request(t, app, tt.header); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewMiddleware().MetricsMiddleware())
	app.Get("/api/recipes/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})
	app.Get("/metrics", MetricsHandler())

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(fiber.MethodGet, "/api/recipes/:id", "418"))
	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/recipes/7", nil)); err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(fiber.MethodGet, "/api/recipes/:id", "418"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("/metrics status = %d", resp.StatusCode)
	}
}
