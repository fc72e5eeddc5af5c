package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

const (
	ActorIDKey ContextKey = "actor_id"
)

type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionLogin    AuditAction = "LOGIN"
	AuditActionCheckout AuditAction = "CHECKOUT"
	AuditActionGrant    AuditAction = "GRANT"
	AuditActionRevoke   AuditAction = "REVOKE"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    AuditAction        `bson:"action" json:"action"`
	Module    string             `bson:"module" json:"module"`         // The feature/collection name
	RecordID  string             `bson:"record_id" json:"record_id"`   // The ID of the record being modified
	ActorID   string             `bson:"actor_id" json:"actor_id"`     // User ID who performed the action
	ActorName string             `bson:"-" json:"actor_name,omitempty"`
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Role is the coarse role a user holds. Custom grants/denials on the
// user's PermissionAssignment refine it per section/action.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleCustomer   Role = "customer"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Section is a coarse admin-area tag
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionOrders    Section = "orders"
	SectionProducts  Section = "products"
	SectionPricing   Section = "pricing"
	SectionContent   Section = "content"
	SectionUsers     Section = "users"
	SectionSettings  Section = "settings"
	SectionAnalytics Section = "analytics"
)

type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
)

// Permission is a (section, action) pair. Its key "section:action" is
// what membership checks run against.
type Permission struct {
	Section Section `bson:"section" json:"section"`
	Action  Action  `bson:"action" json:"action"`
}

func (p Permission) Key() string {
	return string(p.Section) + ":" + string(p.Action)
}

// CustomPermissions holds per-user overrides of the role table.
// Denied is terminal: it beats both Granted and role membership.
type CustomPermissions struct {
	Granted []Permission `bson:"granted,omitempty" json:"granted,omitempty"`
	Denied  []Permission `bson:"denied,omitempty" json:"denied,omitempty"`
}

type RestrictionType string

const (
	RestrictionIPAllow   RestrictionType = "ip_allow"
	RestrictionIPDeny    RestrictionType = "ip_deny"
	RestrictionTimeAllow RestrictionType = "time_allow"
	RestrictionTimeDeny  RestrictionType = "time_deny"
	RestrictionGeoAllow  RestrictionType = "geo_allow"
	RestrictionGeoDeny   RestrictionType = "geo_deny"
)

// AccessRestriction is a tagged union over IP, time-window and geography
// rules. Only the payload fields matching Type are consulted.
//
// IP matching is exact string comparison, no CIDR or range support.
type AccessRestriction struct {
	Type RestrictionType `bson:"type" json:"type"`

	// ip_allow / ip_deny
	IPs []string `bson:"ips,omitempty" json:"ips,omitempty"`

	// time_allow / time_deny
	DaysOfWeek  []time.Weekday `bson:"days_of_week,omitempty" json:"days_of_week,omitempty"`
	StartHour   int            `bson:"start_hour,omitempty" json:"start_hour,omitempty"`
	StartMinute int            `bson:"start_minute,omitempty" json:"start_minute,omitempty"`
	EndHour     int            `bson:"end_hour,omitempty" json:"end_hour,omitempty"`
	EndMinute   int            `bson:"end_minute,omitempty" json:"end_minute,omitempty"`
	Timezone    string         `bson:"timezone,omitempty" json:"timezone,omitempty"`

	// geo_allow / geo_deny
	Countries []string `bson:"countries,omitempty" json:"countries,omitempty"`
	Regions   []string `bson:"regions,omitempty" json:"regions,omitempty"`
}

// PermissionAssignment is a user's full authorization record.
type PermissionAssignment struct {
	Role         Role                `bson:"role" json:"role"`
	Custom       CustomPermissions   `bson:"custom" json:"custom"`
	Restrictions []AccessRestriction `bson:"restrictions,omitempty" json:"restrictions,omitempty"`
	ExpiresAt    *time.Time          `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
}

type GeoLocation struct {
	Country string `json:"country"`
	Region  string `json:"region,omitempty"`
}

// RequestContext carries the environment-dependent inputs of a permission
// check. A zero Timestamp means "now"; missing IP or Geo fails any
// restriction that needs them.
type RequestContext struct {
	IPAddress string
	Timestamp time.Time
	Geo       *GeoLocation
}

type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username    string               `bson:"username" json:"username"`
	Password    string               `bson:"password" json:"-"`
	Email       string               `bson:"email" json:"email"`
	FirstName   string               `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName    string               `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Phone       string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Status      string               `bson:"status" json:"status"` // active, inactive, suspended
	Permissions PermissionAssignment `bson:"permissions" json:"permissions"`
	LastLogin   *time.Time           `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

type Log struct {
	Message      string    `bson:"message" json:"message"`
	IpAddress    string    `bson:"ip_address" json:"ip_address"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	Caller       string    `bson:"caller" json:"caller"`
	AppId        string    `bson:"app_id" json:"app_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
