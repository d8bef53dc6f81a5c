package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// hireDateFloor is the sanity lower bound for hire dates.
var hireDateFloor = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// nameAlphabet accepts letters and whitespace only, covering both the Latin
// and Arabic ranges of the bilingual deployment.
var nameAlphabet = regexp.MustCompile(`^[A-Za-z\x{0600}-\x{06FF}\s]+$`)

const (
	minAge = 18
	maxAge = 65
)

// EmployeeInput is the trimmed, coerced creation payload under validation.
type EmployeeInput struct {
	Name       string
	Department string
	Position   string
	HireDate   string
	Education  string
	Age        *int
	Salary     *float64
	Gender     string
}

// Result carries the outcome of the pipeline: either a list of violations or
// the parsed hire date ready for storage.
type Result struct {
	Violations []string
	HireDate   time.Time
}

// Valid reports whether the input passed every rule.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// ValidateEmployee runs every rule and collects all violations instead of
// short-circuiting on the first one. now anchors the future-date check.
func ValidateEmployee(input EmployeeInput, now time.Time, genders []string) Result {
	var result Result

	name := strings.TrimSpace(input.Name)
	if name == "" {
		result.Violations = append(result.Violations, "name is required")
	}
	if strings.TrimSpace(input.Department) == "" {
		result.Violations = append(result.Violations, "department is required")
	}
	hireDate := strings.TrimSpace(input.HireDate)
	if hireDate == "" {
		result.Violations = append(result.Violations, "hireDate is required")
	}
	if name != "" && !nameAlphabet.MatchString(name) {
		result.Violations = append(result.Violations, "name may contain letters and spaces only")
	}
	if input.Age != nil && (*input.Age < minAge || *input.Age > maxAge) {
		result.Violations = append(result.Violations,
			fmt.Sprintf("age must be between %d and %d", minAge, maxAge))
	}
	if input.Salary != nil && *input.Salary < 0 {
		result.Violations = append(result.Violations, "salary must not be negative")
	}
	if hireDate != "" {
		parsed, err := time.Parse("2006-01-02", hireDate)
		switch {
		case err != nil:
			result.Violations = append(result.Violations, "hireDate must be a valid date in YYYY-MM-DD format")
		case parsed.After(now):
			result.Violations = append(result.Violations, "hireDate must not be in the future")
		case parsed.Before(hireDateFloor):
			result.Violations = append(result.Violations, "hireDate must not be earlier than 1970-01-01")
		default:
			result.HireDate = parsed
		}
	}
	if input.Gender != "" && !contains(genders, input.Gender) {
		result.Violations = append(result.Violations,
			fmt.Sprintf("gender must be one of: %s", strings.Join(genders, ", ")))
	}

	return result
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
