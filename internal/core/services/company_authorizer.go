package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
)

// companyAuthorizer grants access to active employees of a company.
// Manager access additionally requires one of the manager roles.
type companyAuthorizer struct {
	rosterRepo   portsrepo.RosterReader
	managerRoles []domain.Role
}

// NewCompanyAuthorizer creates an authorizer backed by the employee roster.
func NewCompanyAuthorizer(rosterRepo portsrepo.RosterReader, managerRoles []domain.Role) portssvc.CompanyAuthorizerSvc {
	return &companyAuthorizer{rosterRepo: rosterRepo, managerRoles: managerRoles}
}

var _ portssvc.CompanyAuthorizerSvc = (*companyAuthorizer)(nil)

func (a *companyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, required domain.AccessLevel) error {
	entry, err := a.rosterRepo.FindEmployee(ctx, companyID, domain.UserID(userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s is not an employee of company %s", apperrors.ErrForbidden, userID, companyID)
		}
		return fmt.Errorf("failed to check company membership: %w", err)
	}
	if required != domain.AccessManager {
		return nil
	}
	for _, role := range a.managerRoles {
		if entry.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s cannot manage company %s", apperrors.ErrForbidden, entry.Role, companyID)
}
