package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/utils/logger"
)

func createTestAccessRepository(t *testing.T) (*AccessRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug", "development")
	require.NoError(t, err)

	repo := NewAccessRepository(mockDB, testLogger).(*AccessRepository)

	return repo, mockDB
}

func TestAccessRepository_CheckTenantAccess(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		userID   string
		tenantID string
		setupDB  func(pgxmock.PgxPoolIface, string, string)
		want     *domain.TenantAccess
		wantErr  error
		errorMsg string
	}{
		{
			name:     "member with role",
			userID:   "user-1",
			tenantID: "tenant-1",
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID, tenantID string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_user_tenant_access").
					WithArgs(userID, tenantID).
					WillReturnRows(
						pgxmock.NewRows([]string{"has_access", "role"}).
							AddRow(true, strPtr("admin")),
					)
			},
			want: &domain.TenantAccess{HasAccess: true, Role: domain.RoleAdmin},
		},
		{
			name:     "member without explicit role",
			userID:   "user-2",
			tenantID: "tenant-1",
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID, tenantID string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_user_tenant_access").
					WithArgs(userID, tenantID).
					WillReturnRows(
						pgxmock.NewRows([]string{"has_access", "role"}).
							AddRow(true, nil),
					)
			},
			want: &domain.TenantAccess{HasAccess: true, Role: ""},
		},
		{
			name:     "non-member",
			userID:   "user-3",
			tenantID: "tenant-1",
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID, tenantID string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_user_tenant_access").
					WithArgs(userID, tenantID).
					WillReturnRows(
						pgxmock.NewRows([]string{"has_access", "role"}).
							AddRow(false, nil),
					)
			},
			want: &domain.TenantAccess{HasAccess: false, Role: ""},
		},
		{
			name:     "empty result means denied",
			userID:   "user-4",
			tenantID: "tenant-1",
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID, tenantID string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_user_tenant_access").
					WithArgs(userID, tenantID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrAccessDenied,
		},
		{
			name:     "database error propagates",
			userID:   "user-5",
			tenantID: "tenant-1",
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID, tenantID string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_user_tenant_access").
					WithArgs(userID, tenantID).
					WillReturnError(pgx.ErrTxClosed)
			},
			errorMsg: "failed to check tenant access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAccessRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.userID, tt.tenantID)

			got, err := repo.CheckTenantAccess(context.Background(), tt.userID, tt.tenantID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.errorMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
