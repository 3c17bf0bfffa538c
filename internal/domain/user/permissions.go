package user

// Capability names an action the dashboard can gate on. The mapping from
// capability to minimum role is static; there is no per-user ACL.
type Capability string

const (
	CapViewMap           Capability = "VIEW_MAP"
	CapManageBerths      Capability = "MANAGE_BERTHS"
	CapCreateBooking     Capability = "CREATE_BOOKING"
	CapManageBookings    Capability = "MANAGE_BOOKINGS"
	CapRecordPayment     Capability = "RECORD_PAYMENT"
	CapPerformInspection Capability = "PERFORM_INSPECTION"
	CapManageViolations  Capability = "MANAGE_VIOLATIONS"
	CapReportDamage      Capability = "REPORT_DAMAGE"
	CapManageDamage      Capability = "MANAGE_DAMAGE"
	CapViewReports       Capability = "VIEW_REPORTS"
	CapManageUsers       Capability = "MANAGE_USERS"
)

func AllCapabilities() []Capability {
	return []Capability{
		CapViewMap,
		CapManageBerths,
		CapCreateBooking,
		CapManageBookings,
		CapRecordPayment,
		CapPerformInspection,
		CapManageViolations,
		CapReportDamage,
		CapManageDamage,
		CapViewReports,
		CapManageUsers,
	}
}

// minimumRole returns the lowest role allowed to exercise a capability.
// Exhaustive over the Capability set so adding a capability without a rule
// is caught here rather than silently denied.
func minimumRole(cap Capability) (Role, bool) {
	switch cap {
	case CapViewMap, CapReportDamage:
		return RoleInspector, true
	case CapPerformInspection:
		return RoleInspector, true
	case CapCreateBooking, CapRecordPayment:
		return RoleOperator, true
	case CapManageBerths, CapManageBookings, CapManageViolations, CapManageDamage, CapViewReports:
		return RoleManager, true
	case CapManageUsers:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// HasPermission reports whether role may exercise cap. Unknown roles and
// unknown capabilities are always denied.
func HasPermission(role Role, cap Capability) bool {
	min, ok := minimumRole(cap)
	if !ok {
		return false
	}
	return role.AtLeast(min)
}

// AllowedRoles lists every role that satisfies cap, lowest first.
func AllowedRoles(cap Capability) []Role {
	min, ok := minimumRole(cap)
	if !ok {
		return nil
	}
	var roles []Role
	for _, r := range []Role{RoleInspector, RoleOperator, RoleManager, RoleAdmin} {
		if r.AtLeast(min) {
			roles = append(roles, r)
		}
	}
	return roles
}
