package model

// Capability is a single named permission flag.
type Capability string

const (
	CapViewContacts   Capability = "view_contacts"
	CapEditContacts   Capability = "edit_contacts"
	CapDeleteContacts Capability = "delete_contacts"
	CapViewLeads      Capability = "view_leads"
	CapEditLeads      Capability = "edit_leads"
	CapDeleteLeads    Capability = "delete_leads"
	CapViewTasks      Capability = "view_tasks"
	CapEditTasks      Capability = "edit_tasks"
	CapManageTeam     Capability = "manage_team"
	CapViewAnalytics  Capability = "view_analytics"
	CapExportData     Capability = "export_data"
)

// AllCapabilities lists every capability flag in a stable order.
var AllCapabilities = []Capability{
	CapViewContacts,
	CapEditContacts,
	CapDeleteContacts,
	CapViewLeads,
	CapEditLeads,
	CapDeleteLeads,
	CapViewTasks,
	CapEditTasks,
	CapManageTeam,
	CapViewAnalytics,
	CapExportData,
}

// PermissionSet is the computed collection of capability flags for a
// principal against a resource. It is derived per request (or served from
// cache) and never persisted.
type PermissionSet struct {
	ViewContacts   bool `json:"view_contacts"`
	EditContacts   bool `json:"edit_contacts"`
	DeleteContacts bool `json:"delete_contacts"`
	ViewLeads      bool `json:"view_leads"`
	EditLeads      bool `json:"edit_leads"`
	DeleteLeads    bool `json:"delete_leads"`
	ViewTasks      bool `json:"view_tasks"`
	EditTasks      bool `json:"edit_tasks"`
	ManageTeam     bool `json:"manage_team"`
	ViewAnalytics  bool `json:"view_analytics"`
	ExportData     bool `json:"export_data"`
}

// FullPermissionSet returns a set with every capability granted. Used for
// resource owners and platform admins.
func FullPermissionSet() PermissionSet {
	return PermissionSet{
		ViewContacts:   true,
		EditContacts:   true,
		DeleteContacts: true,
		ViewLeads:      true,
		EditLeads:      true,
		DeleteLeads:    true,
		ViewTasks:      true,
		EditTasks:      true,
		ManageTeam:     true,
		ViewAnalytics:  true,
		ExportData:     true,
	}
}

// Has reports whether the named capability is granted. Unknown capability
// names are never granted.
func (p PermissionSet) Has(c Capability) bool {
	switch c {
	case CapViewContacts:
		return p.ViewContacts
	case CapEditContacts:
		return p.EditContacts
	case CapDeleteContacts:
		return p.DeleteContacts
	case CapViewLeads:
		return p.ViewLeads
	case CapEditLeads:
		return p.EditLeads
	case CapDeleteLeads:
		return p.DeleteLeads
	case CapViewTasks:
		return p.ViewTasks
	case CapEditTasks:
		return p.EditTasks
	case CapManageTeam:
		return p.ManageTeam
	case CapViewAnalytics:
		return p.ViewAnalytics
	case CapExportData:
		return p.ExportData
	default:
		return false
	}
}

func (p *PermissionSet) set(c Capability, v bool) {
	switch c {
	case CapViewContacts:
		p.ViewContacts = v
	case CapEditContacts:
		p.EditContacts = v
	case CapDeleteContacts:
		p.DeleteContacts = v
	case CapViewLeads:
		p.ViewLeads = v
	case CapEditLeads:
		p.EditLeads = v
	case CapDeleteLeads:
		p.DeleteLeads = v
	case CapViewTasks:
		p.ViewTasks = v
	case CapEditTasks:
		p.EditTasks = v
	case CapManageTeam:
		p.ManageTeam = v
	case CapViewAnalytics:
		p.ViewAnalytics = v
	case CapExportData:
		p.ExportData = v
	}
}

// RoleDefaults returns the baseline capability set for a delegated role.
// Breadth decreases monotonically from owner down to viewer. An unknown
// role gets the empty set.
func RoleDefaults(r Role) PermissionSet {
	switch r {
	case RoleOwner:
		return FullPermissionSet()
	case RoleManager:
		ps := FullPermissionSet()
		ps.DeleteContacts = false
		ps.DeleteLeads = false
		ps.ManageTeam = false
		return ps
	case RoleMember:
		return PermissionSet{
			ViewContacts: true,
			EditContacts: true,
			ViewLeads:    true,
			EditLeads:    true,
			ViewTasks:    true,
			EditTasks:    true,
		}
	case RoleViewer:
		return PermissionSet{
			ViewContacts: true,
			ViewLeads:    true,
			ViewTasks:    true,
		}
	default:
		return PermissionSet{}
	}
}

// ApplyOverrides layers per-membership overrides on top of a role baseline.
// Only capabilities explicitly present with a non-nil value are replaced;
// everything else inherits the baseline.
func ApplyOverrides(base PermissionSet, overrides map[Capability]*bool) PermissionSet {
	if len(overrides) == 0 {
		return base
	}
	for _, c := range AllCapabilities {
		if v, ok := overrides[c]; ok && v != nil {
			base.set(c, *v)
		}
	}
	return base
}
