package models

// Condition is the exam-taking status of a student relative to a subject:
// regular students attend the course, libre candidates sit the exam externally.
type Condition string

const (
	ConditionRegular Condition = "regular"
	ConditionLibre   Condition = "libre"
)

// Valid reports whether c is one of the persisted condition values.
func (c Condition) Valid() bool {
	return c == ConditionRegular || c == ConditionLibre
}

// MinCohort is the lower bound for the cohort year accepted on submissions.
// The upper bound is the current calendar year and is checked at request time.
const MinCohort = 2000
