package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMarque_SiteAssociations(t *testing.T) {
	marque := NormalizeMarque(map[string]any{
		"id":        float64(7),
		"nom":       "Dacia",
		"idFiliale": float64(4),
	})

	assert.Equal(t, 7, marque.ID)
	require.NotNil(t, marque.FilialeID)
	assert.Equal(t, 4, *marque.FilialeID)
	assert.Nil(t, marque.SuccursaleID)
}

func TestNormalizePeriode_AliasResolution(t *testing.T) {
	periode := NormalizePeriode(map[string]any{
		"Id":        float64(11),
		"Annee":     float64(2026),
		"Mois":      float64(4),
		"dateDebut": "2026-04-01",
	})

	assert.Equal(t, 11, periode.ID)
	assert.Equal(t, 2026, periode.Year)
	assert.Equal(t, 4, periode.Month)
	assert.Equal(t, "2026-04-01", periode.StartDate)
}

func TestNormalizeUser_Defaults(t *testing.T) {
	user := NormalizeUser(nil)
	assert.True(t, user.Active)
	assert.Zero(t, user.ID)

	user = NormalizeUser(map[string]any{"id": float64(3), "actif": false})
	assert.False(t, user.Active)
}

func TestUserSites_EnvelopedCollection(t *testing.T) {
	links := UserSites(map[string]any{
		"records": []any{
			map[string]any{"id": float64(31), "siteId": float64(4)},
		},
	})

	require.Len(t, links, 1)
	assert.Equal(t, 31, links[0].ID)
	assert.Equal(t, 4, links[0].SiteID)
}
