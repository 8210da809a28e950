package auth

import (
	"fmt"
	"unicode"
)

const MinPasswordLength = 6

// PasswordProblems lists every password rule the candidate breaks.
func PasswordProblems(password string) []string {
	var problems []string
	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("Passwords must be at least %d characters.", MinPasswordLength))
	}

	var digit, lower, upper, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}
	if !symbol {
		problems = append(problems, "Passwords must have at least one non alphanumeric character.")
	}
	if !digit {
		problems = append(problems, "Passwords must have at least one digit ('0'-'9').")
	}
	if !lower {
		problems = append(problems, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !upper {
		problems = append(problems, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return problems
}
