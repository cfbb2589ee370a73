package enum

// Role represents a staff member's role in the gym
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleTrainer   Role = "trainer"
	RoleDietitian Role = "dietitian"
	RolePhysio    Role = "physio"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTrainer, RoleDietitian, RolePhysio:
		return true
	}
	return false
}

// IsTrainerRole reports whether the role can be assigned appointments
// and accrue lesson commission.
func (r Role) IsTrainerRole() bool {
	switch r {
	case RoleTrainer, RolePhysio, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Permission represents a single capability granted to a role
type Permission string

const (
	PermViewStats        Permission = "view_stats"
	PermViewPackages     Permission = "view_packages"
	PermManagePackages   Permission = "manage_packages"
	PermViewStaff        Permission = "view_staff"
	PermManageStaff      Permission = "manage_staff"
	PermViewFinancials   Permission = "view_financials"
	PermManageFinancials Permission = "manage_financials"
	PermAddMember        Permission = "add_member"
	PermEditMember       Permission = "edit_member"
	PermViewMember       Permission = "view_member"
	PermDeleteMember     Permission = "delete_member"
	PermAddAppointment   Permission = "add_appointment"
	PermViewSchedule     Permission = "view_schedule"
	PermViewSettings     Permission = "view_settings"
	PermManageSettings   Permission = "manage_settings"
	PermViewStore        Permission = "view_store"
)

// RolePermissions maps each role to its granted permissions.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermViewStats, PermViewPackages, PermManagePackages, PermViewStaff, PermManageStaff,
		PermViewFinancials, PermManageFinancials, PermAddMember, PermEditMember, PermViewMember, PermDeleteMember,
		PermAddAppointment, PermViewSchedule, PermViewSettings, PermManageSettings, PermViewStore,
	},
	RoleManager: {
		PermViewStats, PermViewPackages, PermManagePackages, PermViewStaff, PermManageStaff,
		PermViewFinancials, PermManageFinancials, PermAddMember, PermEditMember, PermViewMember, PermDeleteMember,
		PermAddAppointment, PermViewSchedule, PermViewSettings, PermManageSettings, PermViewStore,
	},
	RoleTrainer: {
		PermAddMember, PermViewMember, PermAddAppointment, PermViewSchedule, PermViewStore,
	},
	RolePhysio: {
		PermAddMember, PermViewMember, PermAddAppointment, PermViewSchedule, PermViewStore,
	},
	RoleDietitian: {
		PermViewMember, PermEditMember, PermViewStore,
	},
}

// HasPermission reports whether the role grants the given permission.
func (r Role) HasPermission(p Permission) bool {
	for _, perm := range RolePermissions[r] {
		if perm == p {
			return true
		}
	}
	return false
}

// Permissions returns the permission set for the role as strings,
// suitable for embedding in a JWT.
func (r Role) Permissions() []string {
	perms := RolePermissions[r]
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
