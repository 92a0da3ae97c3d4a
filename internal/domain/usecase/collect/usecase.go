package collect

// UseCase drives the scheduled polling of the upstream weather provider.
type UseCase interface {
	// CollectCurrentWeather fetches the current weather for the configured
	// location and stores the raw payload with retain=true.
	CollectCurrentWeather() error

	// CollectForecast fetches the forecast for the configured location and
	// stores the raw payload with retain=true.
	CollectForecast() error
}
