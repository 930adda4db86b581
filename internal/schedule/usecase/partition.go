package usecase

import "home-pa-scheduler/internal/model"

// partition splits suggestions into mandatory (need at or above threshold)
// and optional. Both halves come back sorted by suggestion id so every later
// stage sees a fixed order.
func partition(suggestions []model.Suggestion) (mandatory, optional []model.Suggestion) {
	for _, s := range suggestions {
		if s.Need >= MandatoryNeedThreshold {
			mandatory = append(mandatory, s)
		} else {
			optional = append(optional, s)
		}
	}
	sortByID(mandatory)
	sortByID(optional)
	return mandatory, optional
}
