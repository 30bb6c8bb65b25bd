package domain

import (
	"errors"
	"testing"
)

func caller(role, userID string) *Caller {
	return &Caller{UserID: userID, Username: "u-" + userID, Role: role}
}

func TestDecide_AnonymousReads(t *testing.T) {
	if err := Decide(nil, ResourceInstitution, ActionList, ""); err != nil {
		t.Fatalf("anonymous institution list should be allowed, got %v", err)
	}
	if err := Decide(nil, ResourceStudent, ActionRead, ""); err != nil {
		t.Fatalf("anonymous student read should be allowed, got %v", err)
	}
}

func TestDecide_AnonymousWriteIsUnauthorized(t *testing.T) {
	err := Decide(nil, ResourceInstitution, ActionCreate, "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDecide_RoleMatrix(t *testing.T) {
	tests := []struct {
		name     string
		caller   *Caller
		resource Resource
		action   Action
		want     error
	}{
		{"admin creates institution", caller(RoleAdmin, "1"), ResourceInstitution, ActionCreate, nil},
		{"teacher cannot create institution", caller(RoleTeacher, "1"), ResourceInstitution, ActionCreate, ErrForbidden},
		{"teacher creates student", caller(RoleTeacher, "1"), ResourceStudent, ActionCreate, nil},
		{"teacher cannot delete student", caller(RoleTeacher, "1"), ResourceStudent, ActionDelete, ErrForbidden},
		{"admin deletes student", caller(RoleAdmin, "1"), ResourceStudent, ActionDelete, nil},
		{"student cannot create score", caller(RoleStudent, "1"), ResourceScore, ActionCreate, ErrForbidden},
		{"student reads scores", caller(RoleStudent, "1"), ResourceScore, ActionRead, nil},
		{"teacher generates content", caller(RoleTeacher, "1"), ResourceAI, ActionGenerate, nil},
		{"student cannot generate content", caller(RoleStudent, "1"), ResourceAI, ActionGenerate, ErrForbidden},
		{"only admin lists audit", caller(RoleTeacher, "1"), ResourceAudit, ActionList, ErrForbidden},
		{"admin lists audit", caller(RoleAdmin, "1"), ResourceAudit, ActionList, nil},
		{"only admin lists users", caller(RoleStudent, "1"), ResourceUser, ActionList, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.caller, tt.resource, tt.action, "")
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Fatalf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecide_SelfAccess(t *testing.T) {
	student := caller(RoleStudent, "42")

	if err := Decide(student, ResourceUser, ActionRead, "42"); err != nil {
		t.Fatalf("reading own record should be allowed, got %v", err)
	}
	if err := Decide(student, ResourceUser, ActionUpdate, "42"); err != nil {
		t.Fatalf("updating own record should be allowed, got %v", err)
	}
	if err := Decide(student, ResourceUser, ActionRead, "99"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("reading another record should be forbidden, got %v", err)
	}
	// Self-access never extends to delete.
	if err := Decide(student, ResourceUser, ActionDelete, "42"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("deleting own record should be forbidden, got %v", err)
	}
}

func TestDecide_UnknownActionDenied(t *testing.T) {
	if err := Decide(caller(RoleAdmin, "1"), ResourceAI, ActionDelete, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("unlisted action should be forbidden even for admin, got %v", err)
	}
	if err := Decide(nil, ResourceAI, ActionDelete, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unlisted action for anonymous should be unauthorized, got %v", err)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	admin := caller(RoleAdmin, "7")
	for i := 0; i < 100; i++ {
		if err := Decide(admin, ResourceScore, ActionUpdate, ""); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
}
