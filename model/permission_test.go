package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/headwall-io/gatehouse/model"
)

func boolPtr(b bool) *bool { return &b }

func TestRoleDefaults_Owner(t *testing.T) {
	ps := model.RoleDefaults(model.RoleOwner)
	for _, c := range model.AllCapabilities {
		assert.True(t, ps.Has(c), "owner must have %s", c)
	}
}

func TestRoleDefaults_Manager(t *testing.T) {
	ps := model.RoleDefaults(model.RoleManager)

	assert.False(t, ps.DeleteContacts)
	assert.False(t, ps.DeleteLeads)
	assert.False(t, ps.ManageTeam)

	assert.True(t, ps.ViewContacts)
	assert.True(t, ps.EditContacts)
	assert.True(t, ps.ViewLeads)
	assert.True(t, ps.EditLeads)
	assert.True(t, ps.ViewTasks)
	assert.True(t, ps.EditTasks)
	assert.True(t, ps.ViewAnalytics)
	assert.True(t, ps.ExportData)
}

func TestRoleDefaults_Member(t *testing.T) {
	ps := model.RoleDefaults(model.RoleMember)

	assert.True(t, ps.ViewContacts)
	assert.True(t, ps.EditContacts)
	assert.True(t, ps.ViewLeads)
	assert.True(t, ps.EditLeads)
	assert.True(t, ps.ViewTasks)
	assert.True(t, ps.EditTasks)

	assert.False(t, ps.DeleteContacts)
	assert.False(t, ps.DeleteLeads)
	assert.False(t, ps.ManageTeam)
	assert.False(t, ps.ViewAnalytics)
	assert.False(t, ps.ExportData)
}

func TestRoleDefaults_Viewer(t *testing.T) {
	ps := model.RoleDefaults(model.RoleViewer)

	assert.True(t, ps.ViewContacts)
	assert.True(t, ps.ViewLeads)
	assert.True(t, ps.ViewTasks)

	assert.False(t, ps.EditContacts)
	assert.False(t, ps.EditLeads)
	assert.False(t, ps.EditTasks)
	assert.False(t, ps.DeleteContacts)
	assert.False(t, ps.DeleteLeads)
	assert.False(t, ps.ManageTeam)
	assert.False(t, ps.ViewAnalytics)
	assert.False(t, ps.ExportData)
}

func TestRoleDefaults_MonotonicallyDecreasing(t *testing.T) {
	order := []model.Role{model.RoleOwner, model.RoleManager, model.RoleMember, model.RoleViewer}
	for i := 1; i < len(order); i++ {
		broader := model.RoleDefaults(order[i-1])
		narrower := model.RoleDefaults(order[i])
		for _, c := range model.AllCapabilities {
			if narrower.Has(c) {
				assert.True(t, broader.Has(c), "%s grants %s but %s does not", order[i], c, order[i-1])
			}
		}
	}
}

func TestRoleDefaults_UnknownRoleIsEmpty(t *testing.T) {
	ps := model.RoleDefaults(model.Role("superuser"))
	assert.Equal(t, model.PermissionSet{}, ps)
}

func TestApplyOverrides_GrantOnTopOfViewer(t *testing.T) {
	base := model.RoleDefaults(model.RoleViewer)
	ps := model.ApplyOverrides(base, map[model.Capability]*bool{
		model.CapEditContacts: boolPtr(true),
	})

	assert.True(t, ps.EditContacts, "override must grant edit-contacts")
	// Every other flag keeps the viewer default.
	assert.True(t, ps.ViewContacts)
	assert.True(t, ps.ViewLeads)
	assert.True(t, ps.ViewTasks)
	assert.False(t, ps.EditLeads)
	assert.False(t, ps.ManageTeam)
}

func TestApplyOverrides_RevokeOnTopOfManager(t *testing.T) {
	base := model.RoleDefaults(model.RoleManager)
	ps := model.ApplyOverrides(base, map[model.Capability]*bool{
		model.CapExportData: boolPtr(false),
	})

	assert.False(t, ps.ExportData)
	assert.True(t, ps.EditContacts)
}

func TestApplyOverrides_NilEntryInheritsRoleDefault(t *testing.T) {
	base := model.RoleDefaults(model.RoleViewer)
	// A null override, as stored, means inherit: it must not be read as
	// revoke.
	ps := model.ApplyOverrides(base, map[model.Capability]*bool{
		model.CapViewContacts: nil,
		model.CapEditLeads:    nil,
	})

	assert.True(t, ps.ViewContacts)
	assert.False(t, ps.EditLeads)
	assert.Equal(t, base, ps)
}

func TestApplyOverrides_EmptyMapIsIdentity(t *testing.T) {
	base := model.RoleDefaults(model.RoleMember)
	assert.Equal(t, base, model.ApplyOverrides(base, nil))
}

func TestPermissionSet_HasUnknownCapability(t *testing.T) {
	ps := model.FullPermissionSet()
	assert.False(t, ps.Has(model.Capability("launch_rockets")))
}

func TestLimitFor(t *testing.T) {
	assert.Equal(t, 100, model.LimitFor(model.PlanStandard, model.FeatureContacts))
	assert.Equal(t, model.Unlimited, model.LimitFor(model.PlanPremium, model.FeatureContacts))

	// Unknown tier falls back to free.
	assert.Equal(t, 25, model.LimitFor(model.PlanTier("platinum"), model.FeatureContacts))

	// Unknown feature is unlimited.
	assert.Equal(t, model.Unlimited, model.LimitFor(model.PlanFree, model.Feature("widgets")))
}
