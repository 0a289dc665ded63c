package valueobjects

import (
	"fmt"
	"unicode"
)

type Password struct {
	value string
}

// NewPassword enforces 8..72 bytes with at least one letter and one digit.
// 72 is the bcrypt input limit.
func NewPassword(plain string) (*Password, error) {
	if len(plain) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}
	if len(plain) > 72 {
		return nil, fmt.Errorf("password must not exceed 72 characters")
	}

	var hasLetter, hasNumber bool
	for _, r := range plain {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsNumber(r):
			hasNumber = true
		}
	}
	if !hasLetter || !hasNumber {
		return nil, fmt.Errorf("password must contain at least one letter and one number")
	}

	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}
