package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVente_Totality(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "Entrée nulle", raw: nil},
		{name: "Objet vide", raw: map[string]any{}},
		{name: "Type inattendu", raw: "pas un objet"},
		{name: "Objet sans rapport", raw: map[string]any{"foo": "bar", "baz": []any{1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vente := NormalizeVente(tt.raw)

			// Jamais de panique, toujours un enregistrement par défaut complet
			assert.Equal(t, 0, vente.ID)
			assert.Equal(t, time.Now().Year(), vente.Year)
			assert.Equal(t, int(time.Now().Month()), vente.Month)
			assert.True(t, vente.Active)
			assert.Nil(t, vente.BranchID)
			assert.Nil(t, vente.AgencyID)
		})
	}
}

func TestNormalizeVente_AliasResolution(t *testing.T) {
	vente := NormalizeVente(map[string]any{
		"VenteId":       float64(12),
		"TypeVenteId":   float64(3),
		"IdSuccursale":  float64(0),
		"TypeVenteName": "Direct",
	})

	assert.Equal(t, 12, vente.ID)
	assert.Equal(t, 3, vente.TypeSaleID)
	assert.Equal(t, "Direct", vente.TypeSaleName)
	// La clé étrangère à zéro est la sentinelle "absent" du backend
	assert.Nil(t, vente.AgencyID)
}

func TestNormalizeVente_NumericStrings(t *testing.T) {
	vente := NormalizeVente(map[string]any{
		"id":              "41",
		"prixUnitaire":    "185000.50",
		"chiffreAffaires": "370001",
		"marge":           "12000.25",
		"volume":          "2",
		"marqueId":        "7",
	})

	assert.Equal(t, 41, vente.ID)
	assert.InDelta(t, 185000.50, vente.UnitPrice, 0.001)
	assert.InDelta(t, 370001, vente.Revenue, 0.001)
	require.NotNil(t, vente.Margin)
	assert.InDelta(t, 12000.25, *vente.Margin, 0.001)
	require.NotNil(t, vente.BrandID)
	assert.Equal(t, 7, *vente.BrandID)
	assert.Equal(t, 2, vente.Volume)
}

func TestNormalizeVente_ActiveDefaultsTrue(t *testing.T) {
	assert.True(t, NormalizeVente(map[string]any{"id": float64(1)}).Active)
	assert.False(t, NormalizeVente(map[string]any{"id": float64(1), "actif": false}).Active)
	assert.True(t, NormalizeVente(map[string]any{"id": float64(1), "active": "1"}).Active)
}

func TestVentes_EnvelopedCollection(t *testing.T) {
	payload := map[string]any{
		"data": map[string]any{
			"data": []any{
				map[string]any{"id": float64(1), "annee": float64(2026)},
				map[string]any{"id": float64(2), "annee": float64(2026)},
			},
		},
	}

	ventes := Ventes(payload)

	require.Len(t, ventes, 2)
	assert.Equal(t, 1, ventes[0].ID)
	assert.Equal(t, 2026, ventes[1].Year)
}
