package validator

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Email checks email address syntax.
type Email struct{}

// IsValid reports whether the address matches the accepted syntax.
func (Email) IsValid(email string) bool {
	return emailPattern.MatchString(email)
}
