package handlers

import (
	"net/mail"
	"strings"
)

const minPasswordLength = 6

func normalizeEmail(raw string) (string, bool) {
	parsed, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return strings.ToLower(parsed.Address), true
}

func validateCreateUserRequest(req *createUserRequest) string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "nome is required"
	}
	email, ok := normalizeEmail(req.Email)
	if !ok {
		return "Invalid email format"
	}
	req.Email = email
	if len(req.Password) < minPasswordLength {
		return "senha must be at least 6 characters"
	}
	return ""
}

func validateLoginRequest(req *loginRequest) string {
	email, ok := normalizeEmail(req.Email)
	if !ok {
		return "Invalid email format"
	}
	req.Email = email
	if req.Password == "" {
		return "senha is required"
	}
	return ""
}
