// internal/auth/policy_test.go
package auth

import (
	"net/http"
	"reflect"
	"testing"
)

func TestPublicPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/health/live", true},
		{"/swagger", true},
		{"/swagger/index.html", true},
		{"/api-docs", true},
		{"/api-docs/openapi.json", true},
		{"/api/v1/vehicles", false},
		{"/", false},
		{"/healthz", false},
	}

	for _, c := range cases {
		if got := PublicPath(c.path); got != c.want {
			t.Errorf("PublicPath(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestAllow(t *testing.T) {
	admin := []string{AdminRole}
	viewer := []string{RolePrefix + "fleet-viewer"}

	cases := []struct {
		name   string
		roles  []string
		method string
		want   bool
	}{
		{"admin delete", admin, http.MethodDelete, true},
		{"admin post", admin, http.MethodPost, true},
		{"admin put", admin, http.MethodPut, true},
		{"admin get", admin, http.MethodGet, true},
		{"viewer get", viewer, http.MethodGet, true},
		{"viewer delete", viewer, http.MethodDelete, false},
		{"viewer post", viewer, http.MethodPost, false},
		{"viewer put", viewer, http.MethodPut, false},
		{"no roles get", nil, http.MethodGet, true},
		{"no roles delete", nil, http.MethodDelete, false},
		{"no roles patch", nil, http.MethodPatch, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Allow(c.roles, c.method); got != c.want {
				t.Errorf("Allow(%v, %s) = %v, want %v", c.roles, c.method, got, c.want)
			}
		})
	}
}

func TestPrefixRoles(t *testing.T) {
	got := PrefixRoles([]string{"fleet-admin", "offline_access", ""})
	want := []string{"ROLE_fleet-admin", "ROLE_offline_access"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrefixRoles() = %v, want %v", got, want)
	}

	if PrefixRoles(nil) != nil {
		t.Error("PrefixRoles(nil) should return nil")
	}
	if PrefixRoles([]string{}) != nil {
		t.Error("PrefixRoles(empty) should return nil")
	}
}

func TestHasRole(t *testing.T) {
	roles := []string{"ROLE_fleet-admin", "ROLE_driver"}
	if !HasRole(roles, AdminRole) {
		t.Error("HasRole missed an existing role")
	}
	if HasRole(roles, "ROLE_auditor") {
		t.Error("HasRole matched an absent role")
	}
	if HasRole(nil, AdminRole) {
		t.Error("HasRole matched against an empty set")
	}
}
