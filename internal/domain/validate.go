package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/oapi-codegen/runtime/types"
)

// Field validators. Each takes one raw value (plus the minimal context a
// range check needs) and returns a specific message, or "" when valid. They
// are pure and total: empty strings, whitespace and zero dates are handled,
// never panicked on. Single-field (on-change) validation and full-form
// validation call the same functions so the error text never diverges.
//
// Minimum-length thresholds deliberately vary by field — a full name only
// needs 2 characters, trip names and destinations need 3. Do not collapse
// them into one shared constant.

// emailPattern accepts "non-whitespace, one @, at least one dot after it".
// It is deliberately permissive: "a@b..com" passes, there is no case
// normalization. Tightening it would reject addresses the stored data may
// already contain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateTripName checks the trip name field: trimmed, non-empty, ≥3 chars.
func ValidateTripName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Trip name is required"
	}
	if utf8.RuneCountInString(trimmed) < 3 {
		return "Trip name must be at least 3 characters"
	}
	return ""
}

// ValidateDestination checks the destination field: trimmed, non-empty, ≥3 chars.
func ValidateDestination(dest string) string {
	trimmed := strings.TrimSpace(dest)
	if trimmed == "" {
		return "Destination is required"
	}
	if utf8.RuneCountInString(trimmed) < 3 {
		return "Destination must be at least 3 characters"
	}
	return ""
}

// ValidateFullName checks an account holder's name: trimmed, non-empty, ≥2 chars.
func ValidateFullName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Full name is required"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return "Full name must be at least 2 characters"
	}
	return ""
}

// ValidateGuestName checks the name a guest joins under: trimmed, ≥2 chars.
func ValidateGuestName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Please enter your name"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return "Name must be at least 2 characters long"
	}
	return ""
}

// ValidateEmail checks an email address against the permissive shape rule.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email address is required"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

// ValidatePassword checks the password field: non-empty, ≥6 characters.
// There is no complexity requirement.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if utf8.RuneCountInString(password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// ValidateDateRange checks a start/end calendar-date pair. Both dates are
// required and the end must be strictly after the start — equal dates are
// rejected. Returned as FieldErrors because two fields are involved.
func ValidateDateRange(start, end types.Date) FieldErrors {
	errs := FieldErrors{}
	if start.Time.IsZero() {
		errs["startDate"] = "Start date is required"
	}
	if end.Time.IsZero() {
		errs["endDate"] = "End date is required"
	} else if !start.Time.IsZero() && !end.Time.After(start.Time) {
		errs["endDate"] = "End date must be after start date"
	}
	return errs
}

// ValidateTripDraft runs full-form validation for trip create and update.
func ValidateTripDraft(d TripDraft) FieldErrors {
	errs := ValidateDateRange(d.StartDate, d.EndDate)
	if msg := ValidateTripName(d.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := ValidateDestination(d.Destination); msg != "" {
		errs["destination"] = msg
	}
	return errs
}

// ValidateActivityDraft checks the required fields of a new suggestion.
func ValidateActivityDraft(d ActivityDraft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Activity name is required"
	}
	if strings.TrimSpace(d.Time) == "" {
		errs["time"] = "Activity time is required"
	}
	if strings.TrimSpace(d.Location) == "" {
		errs["location"] = "Location is required"
	}
	return errs
}

// ValidateExpenseDraft checks the required fields of a new expense.
func ValidateExpenseDraft(d ExpenseDraft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Expense name is required"
	}
	if d.Amount <= 0 {
		errs["amount"] = "Amount must be greater than zero"
	}
	return errs
}

// ValidateSignUp runs full-form validation for account registration.
func ValidateSignUp(fullName, email, password string) FieldErrors {
	errs := FieldErrors{}
	if msg := ValidateFullName(fullName); msg != "" {
		errs["fullName"] = msg
	}
	if msg := ValidateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidatePassword(password); msg != "" {
		errs["password"] = msg
	}
	return errs
}
