// Package guard holds the ownership rules for mutating requests. Every
// function is a pure computation over already-loaded records: controllers
// resolve entities (and parents) first, then ask for a decision, then mutate.
package guard

import "github.com/nitinsharma1818/Edusync/models"

// Claims are the verified identity fields carried by a bearer token
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Decision is the outcome of an ownership check
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CourseMutation decides whether the caller may update or delete a course.
// Only the owning instructor may.
func CourseMutation(claims Claims, course models.Course) Decision {
	if claims.UserID != course.InstructorID {
		return deny("Only the course instructor can modify this course!")
	}
	return allow()
}

// AssessmentMutation decides whether the caller may create, update or delete
// an assessment. Assessments carry no owner field; the right to touch one
// follows the owner of the course it belongs to. Callers must have resolved
// that course already (a missing course is NotFound, decided before this).
func AssessmentMutation(claims Claims, course models.Course) Decision {
	if claims.UserID != course.InstructorID {
		return deny("Only the course instructor can modify its assessments!")
	}
	return allow()
}

// InstructorCourses decides whether the caller may list the courses of the
// given instructor. Instructors may only read their own list.
func InstructorCourses(claims Claims, instructorID string) Decision {
	if claims.UserID != instructorID {
		return deny("You can only view your own courses!")
	}
	return allow()
}
