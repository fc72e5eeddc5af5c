package permission

import (
	"testing"
	"time"

	common_models "oakcraft/internal/common/models"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(DefaultRolePermissions())
}

func assignment(role common_models.Role) *common_models.PermissionAssignment {
	return &common_models.PermissionAssignment{Role: role}
}

func TestNilAssignmentDenies(t *testing.T) {
	e := newTestEvaluator()

	if e.HasPermission(nil, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{}) {
		t.Error("nil assignment must deny")
	}
}

func TestExpiredAssignmentDeniesEverything(t *testing.T) {
	e := newTestEvaluator()

	yesterday := time.Now().Add(-24 * time.Hour)
	a := assignment(common_models.RoleSuperAdmin)
	a.ExpiresAt = &yesterday

	if e.HasPermission(a, common_models.SectionDashboard, common_models.ActionView, common_models.RequestContext{}) {
		t.Error("expired assignment must deny even for super_admin")
	}
}

func TestDenyBeatsRoleAndGrant(t *testing.T) {
	e := newTestEvaluator()

	p := common_models.Permission{Section: common_models.SectionOrders, Action: common_models.ActionView}
	a := assignment(common_models.RoleAdmin)
	a.Custom.Denied = []common_models.Permission{p}
	a.Custom.Granted = []common_models.Permission{p}

	if e.HasPermission(a, p.Section, p.Action, common_models.RequestContext{}) {
		t.Error("explicit deny must win over role membership and grant")
	}
	// other admin permissions are untouched
	if !e.HasPermission(a, common_models.SectionOrders, common_models.ActionEdit, common_models.RequestContext{}) {
		t.Error("deny of one pair must not affect others")
	}
}

func TestGrantExtendsRole(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleCustomer)
	a.Custom.Granted = []common_models.Permission{
		{Section: common_models.SectionDashboard, Action: common_models.ActionView},
	}

	if !e.HasPermission(a, common_models.SectionDashboard, common_models.ActionView, common_models.RequestContext{}) {
		t.Error("explicit grant must allow beyond the role table")
	}
	if e.HasPermission(a, common_models.SectionDashboard, common_models.ActionEdit, common_models.RequestContext{}) {
		t.Error("grant must not leak to other actions")
	}
}

func TestSuperAdminHoldsEveryPermission(t *testing.T) {
	e := newTestEvaluator()
	a := assignment(common_models.RoleSuperAdmin)

	sections := []common_models.Section{
		common_models.SectionDashboard, common_models.SectionOrders,
		common_models.SectionProducts, common_models.SectionPricing,
		common_models.SectionContent, common_models.SectionUsers,
		common_models.SectionSettings, common_models.SectionAnalytics,
	}
	actions := []common_models.Action{
		common_models.ActionView, common_models.ActionCreate,
		common_models.ActionEdit, common_models.ActionDelete,
		common_models.ActionApprove,
	}

	for _, s := range sections {
		for _, act := range actions {
			if !e.HasPermission(a, s, act, common_models.RequestContext{}) {
				t.Errorf("super_admin denied %s:%s", s, act)
			}
		}
	}
}

func TestGuestAndCustomerHaveNoAdminAccess(t *testing.T) {
	e := newTestEvaluator()

	for _, role := range []common_models.Role{common_models.RoleGuest, common_models.RoleCustomer} {
		a := assignment(role)
		if e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{}) {
			t.Errorf("%s must not see admin orders", role)
		}
	}
}

func TestManagerRoleTable(t *testing.T) {
	e := newTestEvaluator()
	a := assignment(common_models.RoleManager)

	tests := []struct {
		section common_models.Section
		action  common_models.Action
		want    bool
	}{
		{common_models.SectionOrders, common_models.ActionApprove, true},
		{common_models.SectionOrders, common_models.ActionDelete, false},
		{common_models.SectionContent, common_models.ActionEdit, true},
		{common_models.SectionUsers, common_models.ActionView, false},
		{common_models.SectionSettings, common_models.ActionView, false},
	}

	for _, tt := range tests {
		got := e.HasPermission(a, tt.section, tt.action, common_models.RequestContext{})
		if got != tt.want {
			t.Errorf("manager %s:%s = %v, want %v", tt.section, tt.action, got, tt.want)
		}
	}
}

func TestIPRestrictionExactMatch(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleAdmin)
	a.Restrictions = []common_models.AccessRestriction{
		{Type: common_models.RestrictionIPAllow, IPs: []string{"203.0.113.10"}},
	}

	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"exact match", "203.0.113.10", true},
		{"different address", "203.0.113.11", false},
		// matching is literal string comparison, no normalisation
		{"same address different text", "203.000.113.010", false},
		{"missing ip fails closed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := common_models.RequestContext{IPAddress: tt.ip}
			got := e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, rc)
			if got != tt.want {
				t.Errorf("ip %q: got %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}

func TestIPDenyRestriction(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleAdmin)
	a.Restrictions = []common_models.AccessRestriction{
		{Type: common_models.RestrictionIPDeny, IPs: []string{"198.51.100.7"}},
	}

	if e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{IPAddress: "198.51.100.7"}) {
		t.Error("listed address must be denied")
	}
	if !e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{IPAddress: "198.51.100.8"}) {
		t.Error("unlisted address must pass")
	}
	if e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{}) {
		t.Error("missing ip must fail closed even for a deny list")
	}
}

func TestTimeWindowRestriction(t *testing.T) {
	e := newTestEvaluator()

	window := common_models.AccessRestriction{
		Type:       common_models.RestrictionTimeAllow,
		DaysOfWeek: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		StartHour:  9,
		EndHour:    17,
		Timezone:   "UTC",
	}

	a := assignment(common_models.RoleAdmin)
	a.Restrictions = []common_models.AccessRestriction{window}

	// 2026-08-26 is a Wednesday
	insideHours := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	afterHours := time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)
	weekend := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

	check := func(ts time.Time) bool {
		return e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{Timestamp: ts})
	}

	if !check(insideHours) {
		t.Error("inside the window must allow")
	}
	if check(afterHours) {
		t.Error("outside working hours must deny")
	}
	if check(weekend) {
		t.Error("weekend must deny")
	}
}

func TestBrokenTimezoneFailsClosed(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleAdmin)
	a.Restrictions = []common_models.AccessRestriction{
		{
			Type:       common_models.RestrictionTimeDeny,
			DaysOfWeek: []time.Weekday{time.Sunday},
			Timezone:   "Not/AZone",
		},
	}

	// A deny window that cannot be evaluated must still deny.
	if e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{}) {
		t.Error("unloadable timezone must fail closed")
	}
}

func TestGeoRestriction(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleAdmin)
	a.Restrictions = []common_models.AccessRestriction{
		{
			Type:      common_models.RestrictionGeoAllow,
			Countries: []string{"GB"},
			Regions:   []string{"England"},
		},
	}

	check := func(geo *common_models.GeoLocation) bool {
		return e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{IPAddress: "203.0.113.1", Geo: geo})
	}

	if check(nil) {
		t.Error("missing geo data must fail closed")
	}
	if check(&common_models.GeoLocation{Country: "FR"}) {
		t.Error("wrong country must deny")
	}
	if !check(&common_models.GeoLocation{Country: "GB"}) {
		t.Error("matching country with no region data must allow")
	}
	if !check(&common_models.GeoLocation{Country: "GB", Region: "England"}) {
		t.Error("matching region must allow")
	}
	if check(&common_models.GeoLocation{Country: "GB", Region: "Wales"}) {
		t.Error("region narrowing must deny non-listed regions")
	}
}

func TestRestrictionsAreANDed(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleAdmin)
	a.Restrictions = []common_models.AccessRestriction{
		{Type: common_models.RestrictionIPAllow, IPs: []string{"203.0.113.10"}},
		{Type: common_models.RestrictionGeoAllow, Countries: []string{"GB"}},
	}

	rc := common_models.RequestContext{
		IPAddress: "203.0.113.10",
		Geo:       &common_models.GeoLocation{Country: "GB"},
	}
	if !e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, rc) {
		t.Error("all restrictions satisfied must allow")
	}

	rc.Geo = nil
	if e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, rc) {
		t.Error("one failing restriction must deny")
	}
}

func TestUnknownRestrictionTypeDenies(t *testing.T) {
	e := newTestEvaluator()

	a := assignment(common_models.RoleSuperAdmin)
	a.Restrictions = []common_models.AccessRestriction{
		{Type: common_models.RestrictionType("carrier_pigeon")},
	}

	if e.HasPermission(a, common_models.SectionOrders, common_models.ActionView, common_models.RequestContext{}) {
		t.Error("unknown restriction type must fail closed")
	}
}
