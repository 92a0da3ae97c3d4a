package vacuum

import (
	"fmt"

	"weather-collector/internal/domain/gateway/db"
	"weather-collector/internal/domain/model"
	"weather-collector/pkg/log"
)

type vacuumUseCase struct {
	dbGateway db.RawResponseGateway
}

func NewVacuumUseCase(dbGateway db.RawResponseGateway) UseCase {
	return &vacuumUseCase{dbGateway: dbGateway}
}

func (uc *vacuumUseCase) VacuumRetired() (*model.VacuumReport, error) {
	log.Info("Vacuuming retired raw responses")

	report := &model.VacuumReport{}

	currentIDs, err := uc.dbGateway.FindRetiredCurrentWeatherIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list retired current weather responses: %w", err)
	}
	report.CurrentWeather = uc.deleteEach(currentIDs, "current weather", uc.dbGateway.DeleteRetiredCurrentWeatherByID)

	forecastIDs, err := uc.dbGateway.FindRetiredForecastIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list retired forecast responses: %w", err)
	}
	report.Forecast = uc.deleteEach(forecastIDs, "forecast", uc.dbGateway.DeleteRetiredForecastByID)

	log.Infof("Vacuum complete. Rows deleted: %d", report.Deleted())
	return report, nil
}

// deleteEach removes rows one by one so a single failure does not abort the
// whole batch; failed ids are recorded for the report.
func (uc *vacuumUseCase) deleteEach(ids []uint, kind string, deleteByID func(uint) error) model.TableVacuum {
	result := model.TableVacuum{
		DeletedIDs: make([]uint, 0, len(ids)),
		FailedIDs:  []uint{},
	}

	for _, id := range ids {
		if err := deleteByID(id); err != nil {
			log.Errorf("Error deleting retired %s response id=%d: %v", kind, id, err)
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.DeletedIDs = append(result.DeletedIDs, id)
	}

	return result
}
