package model

// ForwardReport summarizes one forwarder run.
type ForwardReport struct {
	Attempted int `json:"attempted"`
	Delivered int `json:"delivered"`
	Conflicts int `json:"conflicts"`
	Failed    int `json:"failed"`
}

// Forwarded returns how many rows were retired this run, counting 409
// conflicts as delivered since the remote already holds the data.
func (r ForwardReport) Forwarded() int {
	return r.Delivered + r.Conflicts
}

// TableVacuum records the outcome of vacuuming one table. Rows that fail to
// delete are recorded and skipped; the run itself still succeeds.
type TableVacuum struct {
	DeletedIDs []uint `json:"deletedIds"`
	FailedIDs  []uint `json:"failedIds"`
}

// VacuumReport summarizes one vacuum run across both raw response tables.
type VacuumReport struct {
	CurrentWeather TableVacuum `json:"currentWeather"`
	Forecast       TableVacuum `json:"forecast"`
}

// Deleted returns the total number of rows removed.
func (r VacuumReport) Deleted() int {
	return len(r.CurrentWeather.DeletedIDs) + len(r.Forecast.DeletedIDs)
}
