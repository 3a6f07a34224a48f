package catalog_test

import (
	"testing"

	"github.com/on-the-ground/kosmos/internal/catalog"
	"github.com/on-the-ground/kosmos/laws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecks_MatchTheirClaims(t *testing.T) {
	checks := catalog.Checks()
	require.NotEmpty(t, checks)

	for _, c := range checks {
		t.Run(c.Name, func(t *testing.T) {
			suite, err := c.Suite()
			require.NoError(t, err)
			report := suite.Run(laws.WithSeed(1234))
			assert.Empty(t, report.Errors())
			assert.Equal(t, c.Holds, report.Passed(), "%s: %v", c.Description, report.Err())
		})
	}
}

func TestChecks_SortedAndUnique(t *testing.T) {
	seen := map[string]bool{}
	var names []string
	for _, c := range catalog.Checks() {
		assert.False(t, seen[c.Name], c.Name)
		seen[c.Name] = true
		names = append(names, c.Name)
	}
	assert.IsIncreasing(t, names)
}

func TestLookup(t *testing.T) {
	c, err := catalog.Lookup("z7/field")
	require.NoError(t, err)
	assert.True(t, c.Holds)

	_, err = catalog.Lookup("z9/field")
	assert.Error(t, err)
}
