package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() ContactRequest {
	return ContactRequest{
		FirstName:         "Alice",
		LastName:          "Martin",
		Email:             "alice.martin@example.com",
		Phone:             "+33 6 12 34 56 78",
		Message:           "I would like to know more about the computer science program.",
		InterestedProgram: "Computer Science",
		GdprConsent:       true,
		Status:            ContactStatusNew,
	}
}

func TestValidateContactRequestValid(t *testing.T) {
	request := validSubmission()
	assert.Nil(t, Validate(&request))
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	request := ContactRequest{
		FirstName:   "A",
		Email:       "not-an-email",
		Message:     "too short",
		GdprConsent: true,
		Status:      ContactStatusNew,
	}

	violations := Validate(&request)
	require.NotNil(t, violations)

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}

	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
	assert.Contains(t, fields, "interestedProgram")
	assert.Len(t, violations, 5)
}

func TestValidateGdprConsentRequired(t *testing.T) {
	request := validSubmission()
	request.GdprConsent = false

	violations := Validate(&request)
	require.Len(t, violations, 1)
	assert.Equal(t, "gdprConsent", violations[0].Field)
	assert.Equal(t, "You must accept the GDPR consent to submit this form", violations[0].Message)
}

func TestValidatePhoneFormat(t *testing.T) {
	request := validSubmission()

	// Optional field: absent is fine
	request.Phone = ""
	assert.Nil(t, Validate(&request))

	request.Phone = "abc"
	violations := Validate(&request)
	require.Len(t, violations, 1)
	assert.Equal(t, "phone", violations[0].Field)
	assert.Equal(t, "Please enter a valid phone number", violations[0].Message)

	request.Phone = "+1 (555) 123-4567"
	assert.Nil(t, Validate(&request))
}

func TestValidateContactStatusChoices(t *testing.T) {
	for _, status := range []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusClosed} {
		request := validSubmission()
		request.Status = status
		assert.Nil(t, Validate(&request), status)
	}

	request := validSubmission()
	request.Status = "archived"
	violations := Validate(&request)
	require.Len(t, violations, 1)
	assert.Equal(t, "status", violations[0].Field)
}

func TestValidateProjectYear(t *testing.T) {
	project := Project{
		Title:  "Campus Marketplace",
		Year:   "3",
		Status: ProjectStatusDraft,
	}
	assert.Nil(t, Validate(&project))

	for _, year := range []string{"", "12", "x"} {
		project.Year = year
		violations := Validate(&project)
		require.NotEmpty(t, violations, "year=%q", year)
		assert.Equal(t, "year", violations[0].Field)
	}

	project.Year = "9"
	assert.Nil(t, Validate(&project))
}

func TestValidateProjectURLs(t *testing.T) {
	project := Project{
		Title:   "Campus Marketplace",
		Year:    "3",
		Status:  ProjectStatusPublished,
		LiveURL: "not a url",
	}

	violations := Validate(&project)
	require.Len(t, violations, 1)
	assert.Equal(t, "liveUrl", violations[0].Field)
	assert.Equal(t, "This value is not a valid URL", violations[0].Message)

	project.LiveURL = "https://demo.example.edu"
	project.GithubURL = "https://github.com/example/campus-marketplace"
	assert.Nil(t, Validate(&project))
}

func TestTouchOnCreateStampsBothInstants(t *testing.T) {
	var stamps Timestamps
	before := time.Now().UTC()
	stamps.TouchOnCreate()

	assert.False(t, stamps.CreatedAt.Before(before))
	assert.Equal(t, stamps.CreatedAt, stamps.UpdatedAt)
}

func TestTouchOnUpdateLeavesCreatedAt(t *testing.T) {
	var stamps Timestamps
	stamps.TouchOnCreate()
	created := stamps.CreatedAt

	time.Sleep(2 * time.Millisecond)
	stamps.TouchOnUpdate()

	assert.Equal(t, created, stamps.CreatedAt)
	assert.True(t, stamps.UpdatedAt.After(created))
}

func TestUserRolesAlwaysIncludeBaseRole(t *testing.T) {
	user := User{Email: "someone@example.com"}
	assert.Equal(t, []string{RoleUser}, user.GetRoles())

	user.Roles = []string{RoleAdmin, RoleUser}
	roles := user.GetRoles()
	assert.ElementsMatch(t, []string{RoleAdmin, RoleUser}, roles)
	assert.Len(t, roles, 2)

	assert.True(t, user.IsAdmin())
}
