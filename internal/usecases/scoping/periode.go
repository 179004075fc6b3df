package scoping

import (
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/utils"
)

// PickLatest retourne la période la plus récente sous l'ordre
// (année, mois, semaine, id), chaque champ comparé en priorité décroissante :
// le premier champ non égal décide. Nil pour une collection vide.
func PickLatest(periodes []domain.Periode) *domain.Periode {
	if len(periodes) == 0 {
		return nil
	}

	latest := periodes[0]
	for _, candidate := range periodes[1:] {
		if isMoreRecent(candidate, latest) {
			latest = candidate
		}
	}

	return &latest
}

func isMoreRecent(a, b domain.Periode) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	if a.Month != b.Month {
		return a.Month > b.Month
	}
	if a.Week != b.Week {
		return a.Week > b.Week
	}
	return a.ID > b.ID
}

// ComputeMonthBounds dérive la fenêtre calendaire de la période. Quand les deux
// dates de bornes parsent, les bornes viennent des dates (mois 1-indexé) ;
// sinon repli sur l'année/mois propres de la période, fenêtre mono-mois.
func ComputeMonthBounds(periode domain.Periode) domain.MonthBounds {
	start, startErr := utils.ParseDate(periode.StartDate)
	end, endErr := utils.ParseDate(periode.EndDate)

	if startErr == nil && endErr == nil {
		return domain.MonthBounds{
			YearFrom:  start.Year(),
			MonthFrom: int(start.Month()),
			YearTo:    end.Year(),
			MonthTo:   int(end.Month()),
		}
	}

	return domain.MonthBounds{
		YearFrom:  periode.Year,
		MonthFrom: periode.Month,
		YearTo:    periode.Year,
		MonthTo:   periode.Month,
	}
}
