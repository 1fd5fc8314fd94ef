package domain

import "testing"

func principal(role Role) *Principal {
	return &Principal{ID: "p1", Email: "p@example.com", DisplayName: "P", Role: role}
}

func TestEvaluateAccess_HydratingIsPending(t *testing.T) {
	d := EvaluateAccess(HydratingSession(), NewAccessRule(RoleCustomer))
	if d.Action != AccessPending {
		t.Fatalf("expected pending, got %v", d.Action)
	}
	if d.Location != "" {
		t.Fatalf("pending must carry no location, got %q", d.Location)
	}
}

func TestEvaluateAccess_AnonymousRedirectsToLogin(t *testing.T) {
	d := EvaluateAccess(AnonymousSession(), NewAccessRule(RoleCustomer, RoleAdmin))
	if d.Action != AccessRedirectToLogin {
		t.Fatalf("expected login redirect, got %v", d.Action)
	}
	if d.Location != PathLogin {
		t.Fatalf("expected %s, got %s", PathLogin, d.Location)
	}
}

func TestEvaluateAccess_AllowedRole(t *testing.T) {
	for _, role := range []Role{RoleCustomer, RoleVideographer, RoleAdmin} {
		d := EvaluateAccess(Session{Principal: principal(role)}, NewAccessRule(role))
		if d.Action != AccessAllow {
			t.Fatalf("role %s: expected allow, got %v", role, d.Action)
		}
	}
}

func TestEvaluateAccess_DisallowedRoleGoesHome(t *testing.T) {
	cases := []struct {
		role Role
		home string
	}{
		{RoleCustomer, PathCustomerHome},
		{RoleVideographer, PathVideographerHome},
		{RoleAdmin, PathAdminHome},
	}
	for _, tc := range cases {
		rule := NewAccessRule(RoleCustomer)
		if tc.role == RoleCustomer {
			rule = NewAccessRule(RoleAdmin)
		}
		d := EvaluateAccess(Session{Principal: principal(tc.role)}, rule)
		if d.Action != AccessRedirectToRoleHome {
			t.Fatalf("role %s: expected role-home redirect, got %v", tc.role, d.Action)
		}
		if d.Location != tc.home {
			t.Fatalf("role %s: expected %s, got %s", tc.role, tc.home, d.Location)
		}
	}
}

// A role outside the enumeration must never reach a dashboard, even when the
// rule is broad.
func TestEvaluateAccess_UnknownRoleFailsClosed(t *testing.T) {
	rule := NewAccessRule(RoleCustomer, RoleVideographer, RoleAdmin)
	d := EvaluateAccess(Session{Principal: principal(Role("root"))}, rule)
	if d.Action != AccessRedirectToRoleHome {
		t.Fatalf("expected redirect, got %v", d.Action)
	}
	if d.Location != PathLanding {
		t.Fatalf("unknown role must land on %s, got %s", PathLanding, d.Location)
	}
}

func TestEvaluateAccess_EmptyRuleNeverAllows(t *testing.T) {
	d := EvaluateAccess(Session{Principal: principal(RoleAdmin)}, AccessRule{})
	if d.Action == AccessAllow {
		t.Fatalf("empty rule must not allow anyone")
	}
}

func TestRoleHome_Total(t *testing.T) {
	cases := map[Role]string{
		RoleCustomer:     PathCustomerHome,
		RoleVideographer: PathVideographerHome,
		RoleAdmin:        PathAdminHome,
		Role("other"):    PathLanding,
		Role(""):         PathLanding,
	}
	for role, want := range cases {
		if got := RoleHome(role); got != want {
			t.Fatalf("RoleHome(%q) = %s, want %s", role, got, want)
		}
	}
}
