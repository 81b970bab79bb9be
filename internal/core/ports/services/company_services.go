package services

import (
	"context"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

// CompanyAuthorizerSvc checks that a user may act within a company.
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction returns apperrors.ErrForbidden when the user is not an
	// active employee of the company or lacks the required access level.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, required domain.AccessLevel) error
}
