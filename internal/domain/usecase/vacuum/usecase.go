package vacuum

import "weather-collector/internal/domain/model"

// UseCase removes raw responses that have already been forwarded.
type UseCase interface {
	// VacuumRetired deletes every row with retain=false from both raw
	// response tables. Rows that fail to delete are reported and skipped;
	// rows with retain=true are never touched.
	VacuumRetired() (*model.VacuumReport, error)
}
