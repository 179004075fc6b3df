package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

func baseForm() domain.VenteForm {
	return domain.VenteForm{
		TypeVenteID:  "3",
		UserID:       "14",
		FilialeID:    "2",
		MarqueID:     "7",
		ModeleID:     "21",
		VersionID:    "105",
		PrixUnitaire: "185000",
		CA:           "370000",
		Marge:        "12000",
		Volume:       "2",
		Annee:        "2026",
		Mois:         "4",
		Granularite:  domain.GranulariteVersion,
	}
}

func TestBuildCreatePayload_GranularityGating(t *testing.T) {
	t.Run("La granularité version porte modèle et version", func(t *testing.T) {
		payload := BuildCreatePayload(baseForm())

		require.NotNil(t, payload.ModeleID)
		require.NotNil(t, payload.VersionID)
		assert.Equal(t, 21, *payload.ModeleID)
		assert.Equal(t, 105, *payload.VersionID)
	})

	t.Run("La granularité modèle annule la version", func(t *testing.T) {
		form := baseForm()
		form.Granularite = domain.GranulariteModele

		payload := BuildCreatePayload(form)

		require.NotNil(t, payload.ModeleID)
		assert.Equal(t, 21, *payload.ModeleID)
		assert.Nil(t, payload.VersionID)
	})

	t.Run("La granularité marque annule modèle et version", func(t *testing.T) {
		form := baseForm()
		form.Granularite = domain.GranulariteMarque

		payload := BuildCreatePayload(form)

		assert.Nil(t, payload.ModeleID)
		assert.Nil(t, payload.VersionID)
	})

	t.Run("Une granularité inconnue est traitée comme marque", func(t *testing.T) {
		form := baseForm()
		form.Granularite = "trim"

		payload := BuildCreatePayload(form)

		assert.Nil(t, payload.ModeleID)
		assert.Nil(t, payload.VersionID)
	})
}

func TestBuildCreatePayload_FieldFallbacks(t *testing.T) {
	payload := BuildCreatePayload(domain.VenteForm{})

	now := time.Now()
	assert.Equal(t, 0, payload.TypeVenteID)
	assert.InDelta(t, 0, payload.PrixUnitaire, 0.001)
	assert.Equal(t, now.Year(), payload.Annee)
	assert.Equal(t, int(now.Month()), payload.Mois)
	assert.True(t, payload.Actif)
	assert.Nil(t, payload.FilialeID)
	assert.Nil(t, payload.Marge)
}

func TestBuildCreatePayload_ForeignKeySentinels(t *testing.T) {
	form := baseForm()
	form.FilialeID = ""
	form.SuccursaleID = "0"
	form.MarqueID = "-3"

	payload := BuildCreatePayload(form)

	// Chaîne vide ou valeur <= 0 donnent null explicite
	assert.Nil(t, payload.FilialeID)
	assert.Nil(t, payload.SuccursaleID)
	assert.Nil(t, payload.MarqueID)
}

func TestBuildUpdatePayload_AbsentVersusNull(t *testing.T) {
	patch := map[string]any{
		"prixUnitaire": "190000",
		"marge":        nil,
	}

	out := BuildUpdatePayload(patch)

	// Seules les clés présentes figurent dans le résultat
	require.Len(t, out, 2)
	assert.InDelta(t, 190000, out["prixUnitaire"].(float64), 0.001)

	// La valeur null est transmise telle quelle : effacement explicite
	margin, present := out["marge"]
	require.True(t, present)
	assert.Nil(t, margin)

	// La clé absente reste absente : champ inchangé côté backend
	_, present = out["volume"]
	assert.False(t, present)
}

func TestBuildUpdatePayload_OptionalNumericConversion(t *testing.T) {
	out := BuildUpdatePayload(map[string]any{"marge": ""})
	margin, present := out["marge"]
	require.True(t, present)
	assert.Nil(t, margin)

	out = BuildUpdatePayload(map[string]any{"marge": "12500.75"})
	assert.InDelta(t, 12500.75, out["marge"].(float64), 0.001)
}

func TestBuildUpdatePayload_ForeignKeyConversion(t *testing.T) {
	out := BuildUpdatePayload(map[string]any{
		"idFiliale":    "4",
		"idSuccursale": "0",
		"versionId":    float64(-2),
	})

	assert.Equal(t, 4, out["idFiliale"])
	assert.Nil(t, out["idSuccursale"])
	assert.Nil(t, out["versionId"])
}

func TestBuildUpdatePayload_UnknownKeysPassThrough(t *testing.T) {
	out := BuildUpdatePayload(map[string]any{"commentaire": "livraison avancée"})

	assert.Equal(t, "livraison avancée", out["commentaire"])
}
