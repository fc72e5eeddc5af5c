package permission

import (
	"time"

	common_models "oakcraft/internal/common/models"
)

// Evaluator decides (section, action) checks against a user's
// PermissionAssignment. It is a pure decision function: the role table is
// fixed at construction and the caller supplies all inputs, so the same
// inputs always produce the same answer. It never errors; anything
// missing or malformed resolves to deny.
type Evaluator struct {
	roleGrants map[common_models.Role]map[string]struct{}
}

// NewEvaluator builds an evaluator from an explicit role→permission table.
func NewEvaluator(table map[common_models.Role][]common_models.Permission) *Evaluator {
	grants := make(map[common_models.Role]map[string]struct{}, len(table))
	for role, perms := range table {
		set := make(map[string]struct{}, len(perms))
		for _, p := range perms {
			set[p.Key()] = struct{}{}
		}
		grants[role] = set
	}
	return &Evaluator{roleGrants: grants}
}

// HasPermission runs the short-circuit evaluation chain:
//
//  1. no assignment            -> deny
//  2. assignment expired       -> deny
//  3. any failing restriction  -> deny (restrictions are ANDed)
//  4. explicitly denied        -> deny (terminal, beats everything)
//  5. explicitly granted       -> allow
//  6. role table decides; super_admin holds every permission
//
// A zero rc.Timestamp means "now".
func (e *Evaluator) HasPermission(a *common_models.PermissionAssignment, section common_models.Section, action common_models.Action, rc common_models.RequestContext) bool {
	if a == nil {
		return false
	}

	now := rc.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	if a.ExpiresAt != nil && a.ExpiresAt.Before(now) {
		return false
	}

	for _, r := range a.Restrictions {
		if !restrictionPermits(r, rc, now) {
			return false
		}
	}

	key := common_models.Permission{Section: section, Action: action}.Key()

	for _, d := range a.Custom.Denied {
		if d.Key() == key {
			return false
		}
	}
	for _, g := range a.Custom.Granted {
		if g.Key() == key {
			return true
		}
	}

	if a.Role == common_models.RoleSuperAdmin {
		return true
	}

	grants, ok := e.roleGrants[a.Role]
	if !ok {
		return false
	}
	_, ok = grants[key]
	return ok
}

// restrictionPermits evaluates a single restriction against the request
// context. Missing context fields a restriction needs fail the check
// rather than skipping it.
func restrictionPermits(r common_models.AccessRestriction, rc common_models.RequestContext, now time.Time) bool {
	switch r.Type {
	case common_models.RestrictionIPAllow:
		return rc.IPAddress != "" && containsString(r.IPs, rc.IPAddress)

	case common_models.RestrictionIPDeny:
		if rc.IPAddress == "" {
			return false
		}
		return !containsString(r.IPs, rc.IPAddress)

	case common_models.RestrictionTimeAllow:
		inside, ok := insideWindow(r, now)
		return ok && inside

	case common_models.RestrictionTimeDeny:
		inside, ok := insideWindow(r, now)
		return ok && !inside

	case common_models.RestrictionGeoAllow:
		if rc.Geo == nil || rc.Geo.Country == "" {
			return false
		}
		if !containsString(r.Countries, rc.Geo.Country) {
			return false
		}
		// the region list narrows further only when both sides have data
		if rc.Geo.Region != "" && len(r.Regions) > 0 {
			return containsString(r.Regions, rc.Geo.Region)
		}
		return true

	case common_models.RestrictionGeoDeny:
		if rc.Geo == nil || rc.Geo.Country == "" {
			return false
		}
		if containsString(r.Countries, rc.Geo.Country) {
			return false
		}
		if rc.Geo.Region != "" && len(r.Regions) > 0 {
			return !containsString(r.Regions, rc.Geo.Region)
		}
		return true
	}

	// unknown restriction type: fail closed
	return false
}

// insideWindow reports whether now falls inside the restriction's
// day-of-week set and [start, end] time-of-day window, evaluated in the
// restriction's timezone. ok is false when the timezone cannot be loaded.
func insideWindow(r common_models.AccessRestriction, now time.Time) (inside bool, ok bool) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return false, false
	}

	local := now.In(loc)

	dayMatch := false
	for _, d := range r.DaysOfWeek {
		if local.Weekday() == d {
			dayMatch = true
			break
		}
	}

	minutes := local.Hour()*60 + local.Minute()
	start := r.StartHour*60 + r.StartMinute
	end := r.EndHour*60 + r.EndMinute

	return dayMatch && minutes >= start && minutes <= end, true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
