package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/core/services"
)

func TestCompanyAuthorizer(t *testing.T) {
	ctx := context.Background()
	roster := new(MockRosterRepository)
	roster.On("FindEmployee", ctx, "co-1", domain.UserID("mgr")).Return(&domain.RosterEntry{Role: "gerant"}, nil)
	roster.On("FindEmployee", ctx, "co-1", domain.UserID("waiter")).Return(&domain.RosterEntry{Role: "serveur"}, nil)
	roster.On("FindEmployee", ctx, "co-1", domain.UserID("ghost")).Return(nil, apperrors.ErrNotFound)
	roster.On("FindEmployee", ctx, "co-1", domain.UserID("broken")).Return(nil, assert.AnError)

	authorizer := services.NewCompanyAuthorizer(roster, []domain.Role{"gerant"})

	tests := []struct {
		name     string
		userID   string
		required domain.AccessLevel
		wantErr  error
	}{
		{name: "manager manages", userID: "mgr", required: domain.AccessManager},
		{name: "employee is a member", userID: "waiter", required: domain.AccessMember},
		{name: "employee cannot manage", userID: "waiter", required: domain.AccessManager, wantErr: apperrors.ErrForbidden},
		{name: "outsider is forbidden", userID: "ghost", required: domain.AccessMember, wantErr: apperrors.ErrForbidden},
		{name: "lookup failure is not forbidden", userID: "broken", required: domain.AccessMember, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.AuthorizeUserAction(ctx, tt.userID, "co-1", tt.required)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr != apperrors.ErrForbidden {
				assert.NotErrorIs(t, err, apperrors.ErrForbidden)
			}
		})
	}
}
