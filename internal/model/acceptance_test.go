package model

import "testing"

func TestAcceptanceSubmission_HasRequired(t *testing.T) {
	cases := []struct {
		name string
		sub  AcceptanceSubmission
		want bool
	}{
		{"all present", AcceptanceSubmission{Name: "Jane Doe", Email: "jane@x.com", Agreed: true}, true},
		{"missing name", AcceptanceSubmission{Email: "jane@x.com", Agreed: true}, false},
		{"blank name", AcceptanceSubmission{Name: "   ", Email: "jane@x.com", Agreed: true}, false},
		{"missing email", AcceptanceSubmission{Name: "Jane Doe", Agreed: true}, false},
		{"blank email", AcceptanceSubmission{Name: "Jane Doe", Email: " \t", Agreed: true}, false},
		{"not agreed", AcceptanceSubmission{Name: "Jane Doe", Email: "jane@x.com"}, false},
		{"email format not checked", AcceptanceSubmission{Name: "Jane", Email: "not-an-email", Agreed: true}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sub.HasRequired(); got != tc.want {
				t.Errorf("HasRequired() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAcceptanceSubmission_Normalize(t *testing.T) {
	s := AcceptanceSubmission{Name: "  Jane ", Email: " jane@x.com\n", Title: "\tCEO"}
	s.Normalize()
	if s.Name != "Jane" || s.Email != "jane@x.com" || s.Title != "CEO" {
		t.Errorf("unexpected normalized submission: %+v", s)
	}
}

func TestAcceptanceSubmission_SignerLine(t *testing.T) {
	cases := []struct {
		sub  AcceptanceSubmission
		want string
	}{
		{AcceptanceSubmission{Name: "Jane"}, "Jane"},
		{AcceptanceSubmission{Name: "Jane", Title: "CEO"}, "Jane, CEO"},
		{AcceptanceSubmission{Name: "Jane", Organization: "CCBM"}, "Jane (CCBM)"},
		{AcceptanceSubmission{Name: "Jane", Title: "CEO", Organization: "CCBM"}, "Jane, CEO (CCBM)"},
	}
	for _, tc := range cases {
		if got := tc.sub.SignerLine(); got != tc.want {
			t.Errorf("SignerLine() = %q, want %q", got, tc.want)
		}
	}
}
