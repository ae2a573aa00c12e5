package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/mocks"
	"tenant-gateway/app/usecase"
	"tenant-gateway/app/utils/logger"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	l, err := logger.New("debug", "development")
	require.NoError(t, err)
	return l
}

func TestTenantResolver_Resolve(t *testing.T) {
	activeTenant := &domain.Tenant{ID: "tenant-1", Name: "Demo Kitchen", Subdomain: "demo", IsActive: true}
	inactiveTenant := &domain.Tenant{ID: "tenant-1", Name: "Demo Kitchen", Subdomain: "demo", IsActive: false}

	tests := []struct {
		name      string
		key       string
		setupMock func(*mocks.MockTenantDirectory)
		want      *domain.Tenant
		wantErr   error
	}{
		{
			name: "fast path resolves active tenant",
			key:  "demo",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "demo").
					Return(activeTenant, nil)
			},
			want: activeTenant,
		},
		{
			name: "fast path inactive tenant reported as not found",
			key:  "demo",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "demo").
					Return(inactiveTenant, nil)
			},
			wantErr: domain.ErrTenantNotFound,
		},
		{
			name: "fast path miss falls through to scheme probes in order",
			key:  "demo",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "demo").
					Return(nil, domain.ErrTenantNotFound)
				gomock.InOrder(
					dir.EXPECT().
						QueryByScheme(gomock.Any(), domain.TenantSchemes[0], "demo").
						Return(nil, domain.ErrTenantNotFound),
					dir.EXPECT().
						QueryByScheme(gomock.Any(), domain.TenantSchemes[1], "demo").
						Return(activeTenant, nil),
				)
			},
			want: activeTenant,
		},
		{
			name: "fast path error still falls through to probes",
			key:  "demo",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "demo").
					Return(nil, errors.New("connection refused"))
				dir.EXPECT().
					QueryByScheme(gomock.Any(), domain.TenantSchemes[0], "demo").
					Return(activeTenant, nil)
			},
			want: activeTenant,
		},
		{
			name: "probe error skips to next scheme",
			key:  "demo",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "demo").
					Return(nil, domain.ErrTenantNotFound)
				gomock.InOrder(
					dir.EXPECT().
						QueryByScheme(gomock.Any(), domain.TenantSchemes[0], "demo").
						Return(nil, errors.New("connection refused")),
					dir.EXPECT().
						QueryByScheme(gomock.Any(), domain.TenantSchemes[1], "demo").
						Return(activeTenant, nil),
				)
			},
			want: activeTenant,
		},
		{
			name: "probe match with inactive tenant stops the sequence",
			key:  "demo",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "demo").
					Return(nil, domain.ErrTenantNotFound)
				dir.EXPECT().
					QueryByScheme(gomock.Any(), domain.TenantSchemes[0], "demo").
					Return(inactiveTenant, nil)
				// No further probes expected: a matched-but-inactive
				// tenant ends the resolution.
			},
			wantErr: domain.ErrTenantNotFound,
		},
		{
			name: "all probes miss",
			key:  "missing",
			setupMock: func(dir *mocks.MockTenantDirectory) {
				dir.EXPECT().
					LookupBySubdomain(gomock.Any(), "missing").
					Return(nil, domain.ErrTenantNotFound)
				for _, scheme := range domain.TenantSchemes {
					dir.EXPECT().
						QueryByScheme(gomock.Any(), scheme, "missing").
						Return(nil, domain.ErrTenantNotFound)
				}
			},
			wantErr: domain.ErrTenantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := mocks.NewMockTenantDirectory(ctrl)
			tt.setupMock(dir)

			resolver := usecase.NewTenantResolver(dir, time.Second, testLogger(t))

			got, err := resolver.Resolve(context.Background(), tt.key)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTenantResolver_Resolve_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockTenantDirectory(ctrl)

	tenant := &domain.Tenant{ID: "tenant-1", Name: "Demo Kitchen", Subdomain: "demo", IsActive: true}
	dir.EXPECT().
		LookupBySubdomain(gomock.Any(), "demo").
		Return(tenant, nil).
		Times(2)

	resolver := usecase.NewTenantResolver(dir, time.Second, testLogger(t))

	first, err := resolver.Resolve(context.Background(), "demo")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
