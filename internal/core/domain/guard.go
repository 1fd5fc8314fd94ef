package domain

// Dashboard and navigation roots. The route guard only ever redirects to one
// of these destinations.
const (
	PathLanding          = "/"
	PathLogin            = "/login"
	PathCustomerHome     = "/dashboard"
	PathVideographerHome = "/videographer"
	PathAdminHome        = "/admin"
)

// AccessRule declares the set of roles allowed to reach a protected route.
// Every protected route carries at least one allowed role.
type AccessRule struct {
	AllowedRoles []Role
}

// NewAccessRule builds a rule from the given roles.
func NewAccessRule(roles ...Role) AccessRule {
	return AccessRule{AllowedRoles: roles}
}

// AccessAction is the kind of decision the route guard returns.
type AccessAction int

const (
	AccessPending AccessAction = iota
	AccessRedirectToLogin
	AccessRedirectToRoleHome
	AccessAllow
)

func (a AccessAction) String() string {
	switch a {
	case AccessPending:
		return "pending"
	case AccessRedirectToLogin:
		return "redirect_to_login"
	case AccessRedirectToRoleHome:
		return "redirect_to_role_home"
	case AccessAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// AccessDecision is the route guard's verdict for one navigation attempt.
// Location is set for redirect actions only.
type AccessDecision struct {
	Action   AccessAction
	Location string
}

// RoleHome maps every role to its dashboard root. The mapping is total over
// the role enumeration; anything outside it resolves to the public landing
// page, never to a dashboard.
func RoleHome(r Role) string {
	switch r {
	case RoleCustomer:
		return PathCustomerHome
	case RoleVideographer:
		return PathVideographerHome
	case RoleAdmin:
		return PathAdminHome
	default:
		return PathLanding
	}
}

// EvaluateAccess decides whether a navigation attempt may proceed. It is a
// pure function of (session, rule) and never grants access to a role outside
// rule.AllowedRoles:
//
//  1. Session still hydrating → Pending.
//  2. No principal → redirect to login.
//  3. Role not allowed → redirect to the principal's own dashboard root;
//     an unrecognized role redirects to the public landing page.
//  4. Otherwise → Allow.
func EvaluateAccess(s Session, rule AccessRule) AccessDecision {
	if s.Hydrating {
		return AccessDecision{Action: AccessPending}
	}
	if s.Principal == nil {
		return AccessDecision{Action: AccessRedirectToLogin, Location: PathLogin}
	}

	role := s.Principal.Role
	if !role.Valid() {
		return AccessDecision{Action: AccessRedirectToRoleHome, Location: PathLanding}
	}
	for _, allowed := range rule.AllowedRoles {
		if allowed == role {
			return AccessDecision{Action: AccessAllow}
		}
	}
	return AccessDecision{Action: AccessRedirectToRoleHome, Location: RoleHome(role)}
}
