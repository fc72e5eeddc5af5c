package permission

import (
	"context"
	"fmt"
	"testing"
	"time"

	common_models "oakcraft/internal/common/models"
)

type memoryStore struct {
	assignments map[string]*common_models.PermissionAssignment
}

func newMemoryStore() *memoryStore {
	return &memoryStore{assignments: make(map[string]*common_models.PermissionAssignment)}
}

func (s *memoryStore) GetAssignment(_ context.Context, userID string) (*common_models.PermissionAssignment, error) {
	a, ok := s.assignments[userID]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	copied := *a
	return &copied, nil
}

func (s *memoryStore) SaveAssignment(_ context.Context, userID string, a *common_models.PermissionAssignment) error {
	s.assignments[userID] = a
	return nil
}

type noopAudit struct{}

func (noopAudit) LogChange(context.Context, common_models.AuditAction, string, string, map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListLogs(context.Context, string, int64, int64) ([]common_models.AuditLog, int64, error) {
	return nil, 0, nil
}

func newTestService(store *memoryStore) PermissionService {
	return NewPermissionService(NewEvaluator(DefaultRolePermissions()), store, noopAudit{})
}

func TestCheckUnknownUserDeniesWithoutError(t *testing.T) {
	svc := newTestService(newMemoryStore())

	allowed, err := svc.Check(context.Background(), "missing", common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{})
	if err != nil {
		t.Fatalf("unknown user must not error: %v", err)
	}
	if allowed {
		t.Error("unknown user must be denied")
	}
}

func TestGrantIsDeduplicated(t *testing.T) {
	store := newMemoryStore()
	store.assignments["u1"] = &common_models.PermissionAssignment{Role: common_models.RoleCustomer}
	svc := newTestService(store)

	p := common_models.Permission{Section: common_models.SectionContent, Action: common_models.ActionView}
	for i := 0; i < 3; i++ {
		if err := svc.Grant(context.Background(), "u1", p); err != nil {
			t.Fatalf("Grant failed: %v", err)
		}
	}

	if got := len(store.assignments["u1"].Custom.Granted); got != 1 {
		t.Errorf("expected 1 granted entry, got %d", got)
	}
}

func TestResetClearsBothLists(t *testing.T) {
	p := common_models.Permission{Section: common_models.SectionPricing, Action: common_models.ActionEdit}
	store := newMemoryStore()
	store.assignments["u1"] = &common_models.PermissionAssignment{
		Role: common_models.RoleManager,
		Custom: common_models.CustomPermissions{
			Granted: []common_models.Permission{p},
			Denied:  []common_models.Permission{p},
		},
	}
	svc := newTestService(store)

	if err := svc.Reset(context.Background(), "u1", p); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	a := store.assignments["u1"]
	if len(a.Custom.Granted) != 0 || len(a.Custom.Denied) != 0 {
		t.Errorf("reset left overrides behind: %+v", a.Custom)
	}
}

func TestChangeRoleRejectsSuperAdminTransitions(t *testing.T) {
	store := newMemoryStore()
	store.assignments["staff"] = &common_models.PermissionAssignment{Role: common_models.RoleManager}
	store.assignments["root"] = &common_models.PermissionAssignment{Role: common_models.RoleSuperAdmin}
	svc := newTestService(store)

	if err := svc.ChangeRole(context.Background(), "staff", common_models.RoleSuperAdmin); err == nil {
		t.Error("promotion to super_admin must be rejected")
	}
	if err := svc.ChangeRole(context.Background(), "root", common_models.RoleAdmin); err == nil {
		t.Error("demotion from super_admin must be rejected")
	}
	if err := svc.ChangeRole(context.Background(), "staff", common_models.Role("warlord")); err == nil {
		t.Error("unknown role must be rejected")
	}
	if err := svc.ChangeRole(context.Background(), "staff", common_models.RoleAdmin); err != nil {
		t.Errorf("ordinary role change failed: %v", err)
	}
	if store.assignments["staff"].Role != common_models.RoleAdmin {
		t.Error("role change was not persisted")
	}
}

func TestAddRestrictionValidates(t *testing.T) {
	store := newMemoryStore()
	store.assignments["u1"] = &common_models.PermissionAssignment{Role: common_models.RoleAdmin}
	svc := newTestService(store)

	if err := svc.AddRestriction(context.Background(), "u1", common_models.AccessRestriction{Type: common_models.RestrictionIPAllow}); err == nil {
		t.Error("ip restriction without addresses must be rejected")
	}
	if err := svc.AddRestriction(context.Background(), "u1", common_models.AccessRestriction{
		Type:       common_models.RestrictionTimeAllow,
		DaysOfWeek: []time.Weekday{time.Monday},
		Timezone:   "Not/AZone",
	}); err == nil {
		t.Error("time restriction with unloadable timezone must be rejected")
	}
	if err := svc.AddRestriction(context.Background(), "u1", common_models.AccessRestriction{Type: common_models.RestrictionGeoDeny}); err == nil {
		t.Error("geo restriction without countries must be rejected")
	}
	if err := svc.AddRestriction(context.Background(), "u1", common_models.AccessRestriction{Type: common_models.RestrictionIPAllow, IPs: []string{"203.0.113.10"}}); err != nil {
		t.Errorf("valid restriction rejected: %v", err)
	}
	if got := len(store.assignments["u1"].Restrictions); got != 1 {
		t.Errorf("expected 1 restriction, got %d", got)
	}
}

func TestRemoveRestrictionBoundsChecked(t *testing.T) {
	store := newMemoryStore()
	store.assignments["u1"] = &common_models.PermissionAssignment{
		Role: common_models.RoleAdmin,
		Restrictions: []common_models.AccessRestriction{
			{Type: common_models.RestrictionIPAllow, IPs: []string{"203.0.113.10"}},
		},
	}
	svc := newTestService(store)

	if err := svc.RemoveRestriction(context.Background(), "u1", 5); err == nil {
		t.Error("out of range index must error")
	}
	if err := svc.RemoveRestriction(context.Background(), "u1", -1); err == nil {
		t.Error("negative index must error")
	}
	if err := svc.RemoveRestriction(context.Background(), "u1", 0); err != nil {
		t.Errorf("valid removal failed: %v", err)
	}
	if got := len(store.assignments["u1"].Restrictions); got != 0 {
		t.Errorf("expected no restrictions, got %d", got)
	}
}
