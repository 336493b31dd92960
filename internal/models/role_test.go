package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleBranch, RoleB2B, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	for _, r := range []Role{"", "superadmin", "Admin", "BRANCH"} {
		if Role(r).Valid() {
			t.Errorf("role %q should be invalid", r)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleBranch, PermPlaceOrders, true},
		{RoleB2B, PermPlaceOrders, true},
		{RoleAdmin, PermPlaceOrders, false},
		{RoleBranch, PermViewAllOrders, false},
		{RoleB2B, PermViewAllOrders, false},
		{RoleAdmin, PermViewAllOrders, true},
		{RoleAdmin, PermManageCatalogs, true},
		{RoleBranch, PermManageCatalogs, false},
	}

	for _, tc := range cases {
		if got := tc.role.Can(tc.perm); got != tc.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCustomerTypeFromRole(t *testing.T) {
	if RoleB2B.CustomerType() != CustomerB2B {
		t.Error("b2b role should map to b2b customer type")
	}
	if RoleBranch.CustomerType() != CustomerBranch {
		t.Error("branch role should map to branch customer type")
	}
}
