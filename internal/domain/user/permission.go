package user

type Permission string

const (
	// Reports
	PermissionReportsView   Permission = "reports.view"
	PermissionReportsExport Permission = "reports.export"

	// Leave Management
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveApprove Permission = "leave.approve"

	// Training
	PermissionTrainingView   Permission = "training.view"
	PermissionTrainingManage Permission = "training.manage"

	// Audit trail
	PermissionActivityView Permission = "activity.view"

	// System
	PermissionSystemStatus Permission = "system.status"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionReportsView,
		PermissionReportsExport,
		PermissionLeaveViewAll,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionTrainingView,
		PermissionTrainingManage,
		PermissionActivityView,
		PermissionSystemStatus,
	},
	RoleHR: {
		PermissionReportsView,
		PermissionReportsExport,
		PermissionLeaveViewAll,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionTrainingView,
		PermissionTrainingManage,
		PermissionActivityView,
	},
	RoleManager: {
		// Manager can approve and view team data
		PermissionReportsView,
		PermissionLeaveViewAll,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionTrainingView,
	},
	RoleEmployee: {
		PermissionLeaveCreate,
		PermissionTrainingView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
