package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/mocks"
	"tenant-gateway/app/utils/logger"
)

type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) HealthCheck(context.Context) error { return s.err }

func newTestDevHandler(t *testing.T, storeErr, identityErr error) (*DevHandler, *mocks.MockDevSeeder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	seeder := mocks.NewMockDevSeeder(ctrl)

	testLogger, err := logger.New("debug", "development")
	require.NoError(t, err)

	h := NewDevHandler(seeder, &stubHealthChecker{err: storeErr}, &stubHealthChecker{err: identityErr}, testLogger)
	return h, seeder
}

func postSeed(t *testing.T, h *DevHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/dev/seed", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Seed(c))
	return rec
}

func TestDevHandler_Seed(t *testing.T) {
	const adminID = "b4fbd3d1-5b56-4c6e-9f5a-2b0f2a1c8d3e"

	t.Run("valid request seeds tenant and grants admin", func(t *testing.T) {
		h, seeder := newTestDevHandler(t, nil, nil)

		var seeded *domain.Tenant
		seeder.EXPECT().
			SeedTenant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
				seeded = tenant
				return nil
			})
		seeder.EXPECT().
			GrantAccess(gomock.Any(), adminID, gomock.Any(), domain.RoleAdmin).
			Return(nil)

		rec := postSeed(t, h, `{"subdomain":"demo","name":"Demo Kitchen","admin_user_id":"`+adminID+`"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, seeded)
		assert.Equal(t, "demo", seeded.Subdomain)
		assert.Equal(t, "Demo Kitchen", seeded.Name)
		assert.True(t, seeded.IsActive)
		assert.NotEmpty(t, seeded.ID)
	})

	t.Run("validation failures rejected before any store call", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "missing fields", body: `{}`},
			{name: "subdomain too short", body: `{"subdomain":"x","name":"Demo","admin_user_id":"` + adminID + `"}`},
			{name: "subdomain not a hostname", body: `{"subdomain":"no spaces","name":"Demo","admin_user_id":"` + adminID + `"}`},
			{name: "admin id not a uuid", body: `{"subdomain":"demo","name":"Demo","admin_user_id":"nope"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h, _ := newTestDevHandler(t, nil, nil)

				rec := postSeed(t, h, tt.body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("seed failure", func(t *testing.T) {
		h, seeder := newTestDevHandler(t, nil, nil)

		seeder.EXPECT().
			SeedTenant(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		rec := postSeed(t, h, `{"subdomain":"demo","name":"Demo Kitchen","admin_user_id":"`+adminID+`"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("grant failure", func(t *testing.T) {
		h, seeder := newTestDevHandler(t, nil, nil)

		seeder.EXPECT().
			SeedTenant(gomock.Any(), gomock.Any()).
			Return(nil)
		seeder.EXPECT().
			GrantAccess(gomock.Any(), adminID, gomock.Any(), domain.RoleAdmin).
			Return(errors.New("connection refused"))

		rec := postSeed(t, h, `{"subdomain":"demo","name":"Demo Kitchen","admin_user_id":"`+adminID+`"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDevHandler_TestConnection(t *testing.T) {
	tests := []struct {
		name        string
		storeErr    error
		identityErr error
		wantStatus  int
		wantStore   string
	}{
		{
			name:       "everything reachable",
			wantStatus: http.StatusOK,
			wantStore:  "ok",
		},
		{
			name:       "store down",
			storeErr:   errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantStore:  "dial tcp: connection refused",
		},
		{
			name:        "identity backend down",
			identityErr: errors.New("kratos unreachable"),
			wantStatus:  http.StatusServiceUnavailable,
			wantStore:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestDevHandler(t, tt.storeErr, tt.identityErr)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/dev/test-connection", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.TestConnection(c))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStore, body["tenant_store"])
		})
	}
}
