package domain

// Resource identifies a class of protected objects.
type Resource string

const (
	ResourceUser        Resource = "user"
	ResourceInstitution Resource = "institution"
	ResourceStudent     Resource = "student"
	ResourceScore       Resource = "score"
	ResourceAI          Resource = "ai"
	ResourceAudit       Resource = "audit"
)

// Action identifies an operation on a resource.
type Action string

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionList     Action = "list"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionGenerate Action = "generate"
)

// Caller is the per-request identity resolved from verified token claims.
// A nil *Caller means the request is anonymous.
type Caller struct {
	UserID   string
	Username string
	Role     string
}

type rule struct {
	roles      map[string]struct{}
	anonymous  bool // action permitted without any caller
	selfAccess bool // caller acting on their own record is allowed
}

func roles(rs ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		m[r] = struct{}{}
	}
	return m
}

// policy is the single declarative permission table. Admin is listed
// explicitly wherever it applies; there is no role hierarchy.
var policy = map[Resource]map[Action]rule{
	ResourceInstitution: {
		ActionCreate: {roles: roles(RoleAdmin)},
		ActionUpdate: {roles: roles(RoleAdmin)},
		ActionDelete: {roles: roles(RoleAdmin)},
		ActionRead:   {anonymous: true},
		ActionList:   {anonymous: true},
	},
	ResourceStudent: {
		ActionCreate: {roles: roles(RoleAdmin, RoleTeacher)},
		ActionUpdate: {roles: roles(RoleAdmin, RoleTeacher)},
		ActionDelete: {roles: roles(RoleAdmin)},
		ActionRead:   {anonymous: true},
		ActionList:   {anonymous: true},
	},
	ResourceUser: {
		ActionList:   {roles: roles(RoleAdmin)},
		ActionDelete: {roles: roles(RoleAdmin)},
		ActionRead:   {roles: roles(RoleAdmin), selfAccess: true},
		ActionUpdate: {roles: roles(RoleAdmin), selfAccess: true},
	},
	ResourceScore: {
		ActionCreate: {roles: roles(RoleAdmin, RoleTeacher)},
		ActionUpdate: {roles: roles(RoleAdmin, RoleTeacher)},
		ActionDelete: {roles: roles(RoleAdmin)},
		ActionRead:   {roles: roles(RoleAdmin, RoleTeacher, RoleStudent)},
		ActionList:   {roles: roles(RoleAdmin, RoleTeacher, RoleStudent)},
	},
	ResourceAI: {
		ActionGenerate: {roles: roles(RoleAdmin, RoleTeacher)},
	},
	ResourceAudit: {
		ActionList: {roles: roles(RoleAdmin)},
	},
}

// Decide evaluates the permission table for one request. It returns nil on
// allow, ErrUnauthorized when an anonymous caller attempts an action that
// requires a role, and ErrForbidden otherwise. targetOwnerID is the id of the
// user who owns the target record; it only matters for self-access rules and
// may be empty everywhere else.
//
// Decide is a pure function of its arguments: no clock, no randomness, no
// stored state.
func Decide(caller *Caller, resource Resource, action Action, targetOwnerID string) error {
	r, ok := policy[resource][action]
	if !ok {
		if caller == nil {
			return ErrUnauthorized
		}
		return ErrForbidden
	}

	if r.anonymous {
		return nil
	}
	if caller == nil {
		return ErrUnauthorized
	}
	if _, ok := r.roles[caller.Role]; ok {
		return nil
	}
	if r.selfAccess && targetOwnerID != "" && caller.UserID == targetOwnerID {
		return nil
	}
	return ErrForbidden
}
