package usecase

import (
	"testing"

	"github.com/AlexanderModestov/thoughtreader/internal/project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteMatchesKeyword(t *testing.T) {
	projects := []*domain.Project{
		{ID: 1, Name: "Repair", Keywords: "repair, plumber, materials"},
		{ID: 2, Name: "Inbox", IsDefault: true},
	}

	got := Route("need to call the repair guy tomorrow", projects)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestRouteCaseInsensitive(t *testing.T) {
	projects := []*domain.Project{
		{ID: 1, Name: "Repair", Keywords: "Plumber"},
	}

	got := Route("Call the PLUMBER", projects)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestRouteNoMatchReturnsNil(t *testing.T) {
	projects := []*domain.Project{
		{ID: 1, Name: "Repair", Keywords: "repair, plumber"},
	}

	assert.Nil(t, Route("buy groceries", projects))
}

func TestRouteSkipsDefaultProject(t *testing.T) {
	// even a keyword match on the default project never routes to it
	projects := []*domain.Project{
		{ID: 2, Name: "Inbox", Keywords: "inbox", IsDefault: true},
	}

	assert.Nil(t, Route("check the inbox", projects))
}

func TestRouteSkipsEmptyKeywords(t *testing.T) {
	projects := []*domain.Project{
		{ID: 1, Name: "Misc", Keywords: ""},
		{ID: 2, Name: "Misc2", Keywords: " , , "},
	}

	assert.Nil(t, Route("misc things to do", projects))
}

func TestRouteFirstMatchWins(t *testing.T) {
	projects := []*domain.Project{
		{ID: 1, Name: "Home", Keywords: "paint"},
		{ID: 2, Name: "Work", Keywords: "paint, office"},
	}

	got := Route("buy paint for the office", projects)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestRouteDeterministic(t *testing.T) {
	projects := []*domain.Project{
		{ID: 1, Name: "Repair", Keywords: "repair"},
		{ID: 2, Name: "Garden", Keywords: "garden"},
	}

	first := Route("repair the garden fence", projects)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Route("repair the garden fence", projects))
	}
}
