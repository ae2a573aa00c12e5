package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/mocks"
	"tenant-gateway/app/usecase"
)

func TestAccessVerifier_Check(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockAccessDirectory)
		want      *domain.TenantAccess
	}{
		{
			name: "granted with role",
			setupMock: func(dir *mocks.MockAccessDirectory) {
				dir.EXPECT().
					CheckTenantAccess(gomock.Any(), "user-1", "tenant-1").
					Return(&domain.TenantAccess{HasAccess: true, Role: domain.RoleStaff}, nil)
			},
			want: &domain.TenantAccess{HasAccess: true, Role: domain.RoleStaff},
		},
		{
			name: "explicit denial passes through",
			setupMock: func(dir *mocks.MockAccessDirectory) {
				dir.EXPECT().
					CheckTenantAccess(gomock.Any(), "user-1", "tenant-1").
					Return(&domain.TenantAccess{HasAccess: false}, nil)
			},
			want: &domain.TenantAccess{HasAccess: false},
		},
		{
			name: "store error folds into denial",
			setupMock: func(dir *mocks.MockAccessDirectory) {
				dir.EXPECT().
					CheckTenantAccess(gomock.Any(), "user-1", "tenant-1").
					Return(nil, errors.New("connection refused"))
			},
			want: &domain.TenantAccess{HasAccess: false},
		},
		{
			name: "access denied sentinel folds into denial",
			setupMock: func(dir *mocks.MockAccessDirectory) {
				dir.EXPECT().
					CheckTenantAccess(gomock.Any(), "user-1", "tenant-1").
					Return(nil, domain.ErrAccessDenied)
			},
			want: &domain.TenantAccess{HasAccess: false},
		},
		{
			name: "nil result folds into denial",
			setupMock: func(dir *mocks.MockAccessDirectory) {
				dir.EXPECT().
					CheckTenantAccess(gomock.Any(), "user-1", "tenant-1").
					Return(nil, nil)
			},
			want: &domain.TenantAccess{HasAccess: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := mocks.NewMockAccessDirectory(ctrl)
			tt.setupMock(dir)

			verifier := usecase.NewAccessVerifier(dir, time.Second, testLogger(t))

			got := verifier.Check(context.Background(), "user-1", "tenant-1")

			assert.Equal(t, tt.want, got)
		})
	}
}
