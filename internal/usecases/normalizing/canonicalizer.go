package normalizing

import (
	"time"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

// NormalizeVente canonise un enregistrement de vente wire quelconque.
// Fonction totale : null, objet vide ou forme inattendue produisent un
// enregistrement par défaut (id 0, année/mois courants) plutôt qu'un échec.
func NormalizeVente(raw any) domain.Vente {
	m := asMap(raw)
	now := time.Now()

	if m == nil {
		return domain.Vente{
			Year:   now.Year(),
			Month:  int(now.Month()),
			Active: true,
		}
	}

	return domain.Vente{
		ID:           intField(m, 0, "id", "Id", "venteId", "VenteId"),
		TypeSaleID:   intField(m, 0, "typeVenteId", "TypeVenteId", "typeSaleId", "TypeSaleId"),
		TypeSaleName: stringField(m, "typeVenteName", "TypeVenteName", "typeSaleName", "libelleTypeVente"),
		UserID:       intField(m, 0, "userId", "UserId", "idUser", "IdUser"),
		BranchID:     foreignKey(m, "idFiliale", "IdFiliale", "filialeId", "FilialeId", "branchId"),
		AgencyID:     foreignKey(m, "idSuccursale", "IdSuccursale", "succursaleId", "SuccursaleId", "agencyId"),
		BrandID:      foreignKey(m, "marqueId", "MarqueId", "idMarque", "brandId"),
		ModelID:      foreignKey(m, "modeleId", "ModeleId", "idModele", "modelId"),
		VersionID:    foreignKey(m, "versionId", "VersionId", "idVersion"),
		UnitPrice:    numberField(m, 0, "prixUnitaire", "PrixUnitaire", "unitPrice"),
		Revenue:      numberField(m, 0, "chiffreAffaires", "ChiffreAffaires", "ca", "CA", "revenue"),
		Margin:       optionalNumber(m, "marge", "Marge", "margin"),
		MarginPercentage: optionalNumber(m,
			"pourcentageMarge", "PourcentageMarge", "margePourcentage", "marginPercentage"),
		Volume:      intField(m, 0, "volume", "Volume", "quantite", "Quantite"),
		Year:        intField(m, now.Year(), "annee", "Annee", "year", "Year"),
		Month:       intField(m, int(now.Month()), "mois", "Mois", "month", "Month"),
		PeriodLabel: stringField(m, "periode", "Periode", "periodLabel", "libellePeriode"),
		Active:      boolField(m, true, "actif", "Actif", "active", "Active", "isActive"),
		CreatedAt:   stringField(m, "createdAt", "dateCreation", "created_at"),
		UpdatedAt:   stringField(m, "updatedAt", "dateModification", "updated_at"),
	}
}

// Ventes canonise la collection de ventes d'une réponse enveloppée.
func Ventes(payload any) []domain.Vente {
	rows := ExtractArray(payload)

	ventes := make([]domain.Vente, 0, len(rows))
	for _, row := range rows {
		ventes = append(ventes, NormalizeVente(row))
	}

	return ventes
}
