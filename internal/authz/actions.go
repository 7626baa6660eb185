package authz

// Action strings granted to roles and required by gated routes.
const (
	ActionAuthLogin = "auth:login"

	ActionRoleCreate = "role:create"
	ActionRoleRead   = "role:read"
	ActionRoleUpdate = "role:update"
	ActionRoleDelete = "role:delete"
	ActionRoleList   = "role:list-action"

	ActionUserCreate = "user:create"
	ActionUserRead   = "user:read"
	ActionUserUpdate = "user:update"
	ActionUserDelete = "user:delete"

	ActionCategoryCreate = "category:create"
	ActionCategoryRead   = "category:read"
	ActionCategoryUpdate = "category:update"
	ActionCategoryDelete = "category:delete"

	ActionProductCreate = "product:create"
	ActionProductRead   = "product:read"
	ActionProductUpdate = "product:update"
	ActionProductDelete = "product:delete"

	ActionEventCreate = "event:create"
	ActionEventRead   = "event:read"
	ActionEventUpdate = "event:update"
	ActionEventDelete = "event:delete"

	ActionEventCategoryCreate = "event_category:create"
	ActionEventCategoryRead   = "event_category:read"
	ActionEventCategoryUpdate = "event_category:update"
	ActionEventCategoryDelete = "event_category:delete"

	ActionRegistrationCreate = "registration_event:create"
	ActionRegistrationRead   = "registration_event:read"
	ActionRegistrationUpdate = "registration_event:update"
	ActionRegistrationDelete = "registration_event:delete"
)

type ActionGroup struct {
	Name    string   `json:"name"`
	Actions []string `json:"actions"`
}

// Catalog lists every grantable action, grouped by resource. Served at
// GET /role/list-action so the UI can build role editors.
func Catalog() []ActionGroup {
	return []ActionGroup{
		{Name: "role", Actions: []string{ActionRoleCreate, ActionRoleRead, ActionRoleUpdate, ActionRoleDelete}},
		{Name: "user", Actions: []string{ActionUserCreate, ActionUserRead, ActionUserUpdate, ActionUserDelete}},
		{Name: "category", Actions: []string{ActionCategoryCreate, ActionCategoryRead, ActionCategoryUpdate, ActionCategoryDelete}},
		{Name: "product", Actions: []string{ActionProductCreate, ActionProductRead, ActionProductUpdate, ActionProductDelete}},
		{Name: "event", Actions: []string{ActionEventCreate, ActionEventRead, ActionEventUpdate, ActionEventDelete}},
		{Name: "event_category", Actions: []string{ActionEventCategoryCreate, ActionEventCategoryRead, ActionEventCategoryUpdate, ActionEventCategoryDelete}},
		{Name: "registration_event", Actions: []string{ActionRegistrationCreate, ActionRegistrationRead, ActionRegistrationUpdate, ActionRegistrationDelete}},
	}
}
