package validator

import "testing"

func TestEmailIsValid(t *testing.T) {
	v := Email{}
	cases := []struct {
		email string
		want  bool
	}{
		{"any_email@gmail.com", true},
		{"user.name+tag@sub.example.co", true},
		{"a@b.io", true},
		{"", false},
		{"plainaddress", false},
		{"@missinglocal.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user@-bad.com", false},
		{"user name@example.com", false},
	}
	for _, tc := range cases {
		if got := v.IsValid(tc.email); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
