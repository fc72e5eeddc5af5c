package permission

import (
	"context"
	"fmt"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"
)

// AssignmentStore loads and persists a user's authorization record.
// Implemented by the user repository; wired through an adapter in main to
// keep this package free of the user feature.
type AssignmentStore interface {
	GetAssignment(ctx context.Context, userID string) (*common_models.PermissionAssignment, error)
	SaveAssignment(ctx context.Context, userID string, assignment *common_models.PermissionAssignment) error
}

type PermissionService interface {
	// Check resolves the user's assignment and runs the evaluator.
	// Unknown users deny rather than error (fail-closed).
	Check(ctx context.Context, userID string, section common_models.Section, action common_models.Action, rc common_models.RequestContext) (bool, error)
	GetAssignment(ctx context.Context, userID string) (*common_models.PermissionAssignment, error)

	Grant(ctx context.Context, userID string, p common_models.Permission) error
	Deny(ctx context.Context, userID string, p common_models.Permission) error
	Reset(ctx context.Context, userID string, p common_models.Permission) error
	AddRestriction(ctx context.Context, userID string, r common_models.AccessRestriction) error
	RemoveRestriction(ctx context.Context, userID string, index int) error
	SetExpiry(ctx context.Context, userID string, expiresAt *time.Time) error
	ChangeRole(ctx context.Context, userID string, role common_models.Role) error
}

type PermissionServiceImpl struct {
	Evaluator    *Evaluator
	Store        AssignmentStore
	AuditService audit.AuditService
}

func NewPermissionService(evaluator *Evaluator, store AssignmentStore, auditService audit.AuditService) PermissionService {
	return &PermissionServiceImpl{
		Evaluator:    evaluator,
		Store:        store,
		AuditService: auditService,
	}
}

func (s *PermissionServiceImpl) Check(ctx context.Context, userID string, section common_models.Section, action common_models.Action, rc common_models.RequestContext) (bool, error) {
	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		// no record means no access, not a server error
		return false, nil
	}
	return s.Evaluator.HasPermission(assignment, section, action, rc), nil
}

func (s *PermissionServiceImpl) GetAssignment(ctx context.Context, userID string) (*common_models.PermissionAssignment, error) {
	return s.Store.GetAssignment(ctx, userID)
}

func (s *PermissionServiceImpl) Grant(ctx context.Context, userID string, p common_models.Permission) error {
	if err := validatePermission(p); err != nil {
		return err
	}

	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	if !containsPermission(assignment.Custom.Granted, p) {
		assignment.Custom.Granted = append(assignment.Custom.Granted, p)
	}

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionGrant, "permission", userID, map[string]common_models.Change{
		"granted": {New: p.Key()},
	})
	return nil
}

func (s *PermissionServiceImpl) Deny(ctx context.Context, userID string, p common_models.Permission) error {
	if err := validatePermission(p); err != nil {
		return err
	}

	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	if !containsPermission(assignment.Custom.Denied, p) {
		assignment.Custom.Denied = append(assignment.Custom.Denied, p)
	}

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionRevoke, "permission", userID, map[string]common_models.Change{
		"denied": {New: p.Key()},
	})
	return nil
}

// Reset removes the permission from both override lists, returning the
// (section, action) pair to pure role-based evaluation.
func (s *PermissionServiceImpl) Reset(ctx context.Context, userID string, p common_models.Permission) error {
	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	assignment.Custom.Granted = removePermission(assignment.Custom.Granted, p)
	assignment.Custom.Denied = removePermission(assignment.Custom.Denied, p)

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "permission", userID, map[string]common_models.Change{
		"reset": {New: p.Key()},
	})
	return nil
}

func (s *PermissionServiceImpl) AddRestriction(ctx context.Context, userID string, r common_models.AccessRestriction) error {
	if err := validateRestriction(r); err != nil {
		return err
	}

	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	assignment.Restrictions = append(assignment.Restrictions, r)

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "permission", userID, map[string]common_models.Change{
		"restriction_added": {New: r.Type},
	})
	return nil
}

func (s *PermissionServiceImpl) RemoveRestriction(ctx context.Context, userID string, index int) error {
	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(assignment.Restrictions) {
		return fmt.Errorf("restriction index %d out of range", index)
	}

	removed := assignment.Restrictions[index]
	assignment.Restrictions = append(assignment.Restrictions[:index], assignment.Restrictions[index+1:]...)

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "permission", userID, map[string]common_models.Change{
		"restriction_removed": {Old: removed.Type},
	})
	return nil
}

func (s *PermissionServiceImpl) SetExpiry(ctx context.Context, userID string, expiresAt *time.Time) error {
	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	old := assignment.ExpiresAt
	assignment.ExpiresAt = expiresAt

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "permission", userID, map[string]common_models.Change{
		"expires_at": {Old: old, New: expiresAt},
	})
	return nil
}

// ChangeRole swaps the user's role. Promotion to or demotion from
// super_admin is refused here; that transition is a manual operation.
func (s *PermissionServiceImpl) ChangeRole(ctx context.Context, userID string, role common_models.Role) error {
	if !isKnownRole(role) {
		return fmt.Errorf("unknown role %q", role)
	}

	assignment, err := s.Store.GetAssignment(ctx, userID)
	if err != nil {
		return err
	}

	if role == common_models.RoleSuperAdmin || assignment.Role == common_models.RoleSuperAdmin {
		return fmt.Errorf("role changes to or from %s are not permitted", common_models.RoleSuperAdmin)
	}

	old := assignment.Role
	assignment.Role = role

	if err := s.Store.SaveAssignment(ctx, userID, assignment); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "permission", userID, map[string]common_models.Change{
		"role": {Old: old, New: role},
	})
	return nil
}

func validatePermission(p common_models.Permission) error {
	if p.Section == "" || p.Action == "" {
		return fmt.Errorf("permission needs both section and action")
	}
	return nil
}

func validateRestriction(r common_models.AccessRestriction) error {
	switch r.Type {
	case common_models.RestrictionIPAllow, common_models.RestrictionIPDeny:
		if len(r.IPs) == 0 {
			return fmt.Errorf("ip restriction needs at least one address")
		}
	case common_models.RestrictionTimeAllow, common_models.RestrictionTimeDeny:
		if len(r.DaysOfWeek) == 0 {
			return fmt.Errorf("time restriction needs at least one day")
		}
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			return fmt.Errorf("time restriction has invalid timezone %q", r.Timezone)
		}
	case common_models.RestrictionGeoAllow, common_models.RestrictionGeoDeny:
		if len(r.Countries) == 0 {
			return fmt.Errorf("geo restriction needs at least one country")
		}
	default:
		return fmt.Errorf("unknown restriction type %q", r.Type)
	}
	return nil
}

func isKnownRole(role common_models.Role) bool {
	for _, r := range KnownRoles() {
		if r == role {
			return true
		}
	}
	return false
}

func containsPermission(list []common_models.Permission, p common_models.Permission) bool {
	for _, item := range list {
		if item.Key() == p.Key() {
			return true
		}
	}
	return false
}

func removePermission(list []common_models.Permission, p common_models.Permission) []common_models.Permission {
	out := list[:0]
	for _, item := range list {
		if item.Key() != p.Key() {
			out = append(out, item)
		}
	}
	return out
}
