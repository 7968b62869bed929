package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRoleToMembers_RoleNameSubstringIsHigh(t *testing.T) {
	members := []Member{
		{UserID: 1, Name: "Alice", Designation: "Senior Backend Engineer"},
		{UserID: 2, Name: "Bob", Designation: "Product Designer"},
	}

	got := MatchRoleToMembers(RoleBackend, members)

	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].UserID)
	assert.Equal(t, ConfidenceHigh, got[0].Confidence)
}

func TestMatchRoleToMembers_TwoKeywordsIsHigh(t *testing.T) {
	members := []Member{
		{UserID: 1, Name: "Alice", Designation: "API and server engineer"},
	}

	got := MatchRoleToMembers(RoleBackend, members)

	require.Len(t, got, 1)
	assert.Equal(t, ConfidenceHigh, got[0].Confidence)
}

func TestMatchRoleToMembers_OneKeywordIsMedium(t *testing.T) {
	members := []Member{
		{UserID: 1, Name: "Alice", Designation: "API integrations"},
	}

	got := MatchRoleToMembers(RoleBackend, members)

	require.Len(t, got, 1)
	assert.Equal(t, ConfidenceMedium, got[0].Confidence)
}

func TestMatchRoleToMembers_NoMatchesFallsBackToEveryone(t *testing.T) {
	members := []Member{
		{UserID: 1, Name: "Alice", Designation: "Accountant"},
		{UserID: 2, Name: "Bob", Designation: "Office Manager"},
		{UserID: 3, Name: "Carol", Designation: ""},
	}

	got := MatchRoleToMembers(RoleMobile, members)

	// Nobody matched, so everyone is offered at low confidence rather than an
	// empty list, empty designations included.
	require.Len(t, got, len(members))
	for _, s := range got {
		assert.Equal(t, ConfidenceLow, s.Confidence)
	}
}

func TestMatchRoleToMembers_OrderedByConfidenceStable(t *testing.T) {
	members := []Member{
		{UserID: 1, Name: "Alice", Designation: "QA adjacent tester"},
		{UserID: 2, Name: "Bob", Designation: "Quality automation lead"},
		{UserID: 3, Name: "Carol", Designation: "Works with test tooling"},
	}

	got := MatchRoleToMembers(RoleQA, members)

	require.Len(t, got, 3)
	// Alice and Bob both grade high and keep their input order; Carol's
	// single keyword puts her last.
	assert.Equal(t, uint(1), got[0].UserID)
	assert.Equal(t, ConfidenceHigh, got[0].Confidence)
	assert.Equal(t, uint(2), got[1].UserID)
	assert.Equal(t, ConfidenceHigh, got[1].Confidence)
	assert.Equal(t, uint(3), got[2].UserID)
	assert.Equal(t, ConfidenceMedium, got[2].Confidence)
}

func TestMatchRoleToMembers_EmptyDesignationSkipped(t *testing.T) {
	members := []Member{
		{UserID: 1, Name: "Alice", Designation: ""},
		{UserID: 2, Name: "Bob", Designation: "Backend Developer"},
	}

	got := MatchRoleToMembers(RoleBackend, members)

	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].UserID)
}
