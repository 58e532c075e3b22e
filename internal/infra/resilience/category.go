// Package resilience provides the categorized error log, circuit breakers and retry with backoff.
package resilience

import (
	"log/slog"
	"strings"
)

// Category is the error taxonomy used in logs and diagnostics.
type Category string

const (
	CategoryAuthentication  Category = "authentication"
	CategoryDatabase        Category = "database"
	CategoryNetwork         Category = "network"
	CategoryValidation      Category = "validation"
	CategoryAuthorization   Category = "authorization"
	CategoryBusinessLogic   Category = "business_logic"
	CategoryExternalService Category = "external_service"
	CategorySystem          Category = "system"
)

// CategoryKey is the slog attribute key carrying the category.
const CategoryKey = "category"

// Attr returns the slog attribute tagging a record with c.
func (c Category) Attr() slog.Attr {
	return slog.String(CategoryKey, string(c))
}

// keyword rules are checked in order; the first match wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryAuthentication, []string{"unauthenticated", "invalid token", "token expired", "jwt", "password", "credential", "login"}},
	{CategoryAuthorization, []string{"forbidden", "permission", "not allowed", "access denied", "unauthorized"}},
	{CategoryValidation, []string{"validation", "invalid", "required", "malformed"}},
	{CategoryDatabase, []string{"sql", "database", "postgres", "gorm", "duplicate key", "constraint", "deadlock", "transaction"}},
	{CategoryNetwork, []string{"timeout", "deadline exceeded", "connection refused", "connection reset", "no such host", "network", "eof"}},
	{CategoryExternalService, []string{"pubsub", "notification", "endpoint", "status code", "upstream", "service unavailable"}},
	{CategoryBusinessLogic, []string{"referral", "milestone", "reward", "subscription", "achievement"}},
}

// Categorize guesses the category of an unstructured error message by keyword.
func Categorize(message string) Category {
	lower := strings.ToLower(message)
	for _, rule := range categoryKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}

	return CategorySystem
}

// CategorizeError is Categorize over err.Error(). A nil error is system.
func CategorizeError(err error) Category {
	if err == nil {
		return CategorySystem
	}

	return Categorize(err.Error())
}
