package entity

// Location is a normalized WeatherAPI location. Rows are deduplicated on the
// natural key (name, region, country): ingestion looks the location up before
// inserting a new one.
type Location struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"type:text;uniqueIndex:uq_location_name_country" json:"name"`
	Region         string  `gorm:"type:text" json:"region"`
	Country        string  `gorm:"type:text;uniqueIndex:uq_location_name_country" json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `gorm:"column:tz_id;type:text" json:"tzId"`
	LocaltimeEpoch int64   `json:"localtimeEpoch"`
	Localtime      string  `gorm:"type:text" json:"localtime"`
}

func (Location) TableName() string {
	return "weatherapi_location"
}
