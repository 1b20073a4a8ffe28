package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPermissions = errors.New("invalid permissions")

// Permissions is the five-flag capability set granted to a user.
//
// Two instances exist per user: one on the company membership (the
// ceiling, granted by a company admin) and one per job assignment.
// The flags a user actually has on a job are CapPermissions(job, company).
type Permissions struct {
	CanManageUsers        bool `json:"canManageUsers"`
	CanViewAllSpecialties bool `json:"canViewAllSpecialties"`
	CanViewPrices         bool `json:"canViewPrices"`
	CanEditPrices         bool `json:"canEditPrices"`
	CanAudit              bool `json:"canAudit"`
}

// Provisioning templates. These are fixed, never computed.
var (
	DefaultEmployeePermissions = Permissions{CanViewPrices: true}

	OwnerPermissions = Permissions{
		CanManageUsers:        true,
		CanViewAllSpecialties: true,
		CanViewPrices:         true,
		CanEditPrices:         true,
		CanAudit:              true,
	}

	AdminPermissions = Permissions{
		CanManageUsers:        true,
		CanViewAllSpecialties: true,
		CanViewPrices:         true,
		CanEditPrices:         true,
		CanAudit:              true,
	}

	SupportPermissions = Permissions{
		CanManageUsers: true,
		CanAudit:       true,
	}
)

// CapPermissions intersects job-level grants with the company-level
// ceiling. A job grant can never exceed what the company granted.
func CapPermissions(jobPerms, companyPerms Permissions) Permissions {
	return Permissions{
		CanManageUsers:        jobPerms.CanManageUsers && companyPerms.CanManageUsers,
		CanViewAllSpecialties: jobPerms.CanViewAllSpecialties && companyPerms.CanViewAllSpecialties,
		CanViewPrices:         jobPerms.CanViewPrices && companyPerms.CanViewPrices,
		CanEditPrices:         jobPerms.CanEditPrices && companyPerms.CanEditPrices,
		CanAudit:              jobPerms.CanAudit && companyPerms.CanAudit,
	}
}

var permissionKeys = map[string]struct{}{
	"canManageUsers":        {},
	"canViewAllSpecialties": {},
	"canViewPrices":         {},
	"canEditPrices":         {},
	"canAudit":              {},
}

// ParsePermissions decodes the serialized permission blob stored on
// memberships and job assignments.
//
// An empty blob yields the default employee template (the column
// default). Missing flags are false. Unknown keys and non-boolean
// values are rejected so that partially-shaped data never reaches
// CapPermissions.
func ParsePermissions(raw string) (Permissions, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultEmployeePermissions, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Permissions{}, fmt.Errorf("%w: %v", ErrInvalidPermissions, err)
	}
	for key, value := range fields {
		if _, ok := permissionKeys[key]; !ok {
			return Permissions{}, fmt.Errorf("%w: unknown flag %q", ErrInvalidPermissions, key)
		}
		v := bytes.TrimSpace(value)
		if !bytes.Equal(v, []byte("true")) && !bytes.Equal(v, []byte("false")) {
			return Permissions{}, fmt.Errorf("%w: flag %q is not a boolean", ErrInvalidPermissions, key)
		}
	}

	var p Permissions
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Permissions{}, fmt.Errorf("%w: %v", ErrInvalidPermissions, err)
	}
	return p, nil
}

// Encode serializes p into the storage representation.
func (p Permissions) Encode() string {
	b, _ := json.Marshal(p)
	return string(b)
}

// Role is a member's role inside a company.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
	RoleSupport Role = "SUPPORT"
)

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleOwner, RoleAdmin, RoleUser, RoleSupport:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// IsManager reports whether the role administers the company.
func (r Role) IsManager() bool {
	return r == RoleOwner || r == RoleAdmin
}

// TemplateForRole returns the permissions a new membership is provisioned with.
func TemplateForRole(r Role) Permissions {
	switch r {
	case RoleOwner:
		return OwnerPermissions
	case RoleAdmin:
		return AdminPermissions
	case RoleSupport:
		return SupportPermissions
	default:
		return DefaultEmployeePermissions
	}
}

var supportAdminUsernames = []string{"mateus", "admin", "admin_test"}

// IsSupportAdmin reports whether the user has platform-wide support access.
func IsSupportAdmin(username, globalRole string) bool {
	if globalRole == "support_admin" || globalRole == "super_admin" {
		return true
	}
	return IsReservedUsername(username)
}

// IsReservedUsername reports whether the name grants support access on its
// own. Such names can only be provisioned by an operator.
func IsReservedUsername(username string) bool {
	name := strings.ToLower(strings.TrimSpace(username))
	for _, u := range supportAdminUsernames {
		if u == name {
			return true
		}
	}
	return false
}
