package permission

import (
	common_models "oakcraft/internal/common/models"
)

// DefaultRolePermissions is the static role→permission table. super_admin
// is absent on purpose: the evaluator grants it everything.
func DefaultRolePermissions() map[common_models.Role][]common_models.Permission {
	allActions := []common_models.Action{
		common_models.ActionView,
		common_models.ActionCreate,
		common_models.ActionEdit,
		common_models.ActionDelete,
		common_models.ActionApprove,
	}

	all := func(sections ...common_models.Section) []common_models.Permission {
		var perms []common_models.Permission
		for _, s := range sections {
			for _, a := range allActions {
				perms = append(perms, common_models.Permission{Section: s, Action: a})
			}
		}
		return perms
	}

	manager := []common_models.Permission{
		{Section: common_models.SectionDashboard, Action: common_models.ActionView},
		{Section: common_models.SectionOrders, Action: common_models.ActionView},
		{Section: common_models.SectionOrders, Action: common_models.ActionEdit},
		{Section: common_models.SectionOrders, Action: common_models.ActionApprove},
		{Section: common_models.SectionProducts, Action: common_models.ActionView},
		{Section: common_models.SectionProducts, Action: common_models.ActionEdit},
		{Section: common_models.SectionPricing, Action: common_models.ActionView},
		{Section: common_models.SectionContent, Action: common_models.ActionView},
		{Section: common_models.SectionContent, Action: common_models.ActionEdit},
		{Section: common_models.SectionAnalytics, Action: common_models.ActionView},
	}

	admin := all(
		common_models.SectionDashboard,
		common_models.SectionOrders,
		common_models.SectionProducts,
		common_models.SectionPricing,
		common_models.SectionContent,
		common_models.SectionAnalytics,
		common_models.SectionSettings,
	)
	// admins manage users but cannot remove them
	admin = append(admin,
		common_models.Permission{Section: common_models.SectionUsers, Action: common_models.ActionView},
		common_models.Permission{Section: common_models.SectionUsers, Action: common_models.ActionCreate},
		common_models.Permission{Section: common_models.SectionUsers, Action: common_models.ActionEdit},
	)

	return map[common_models.Role][]common_models.Permission{
		common_models.RoleGuest:    nil,
		common_models.RoleCustomer: nil,
		common_models.RoleManager:  manager,
		common_models.RoleAdmin:    admin,
	}
}

// KnownRoles lists every assignable role.
func KnownRoles() []common_models.Role {
	return []common_models.Role{
		common_models.RoleGuest,
		common_models.RoleCustomer,
		common_models.RoleManager,
		common_models.RoleAdmin,
		common_models.RoleSuperAdmin,
	}
}
