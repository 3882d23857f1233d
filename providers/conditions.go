package providers

import (
	"strings"

	"weekendly.app/models"
)

// weatherIcons maps the upstream main-condition category to a display icon.
// Unrecognized conditions fall back to the generic icon.
var weatherIcons = map[string]string{
	"clear":        "☀️",
	"clouds":       "☁️",
	"rain":         "🌧️",
	"drizzle":      "🌦️",
	"thunderstorm": "⛈️",
	"snow":         "❄️",
	"mist":         "🌫️",
	"fog":          "🌫️",
	"haze":         "🌫️",
	"dust":         "🌫️",
	"sand":         "🌫️",
	"ash":          "🌫️",
	"squall":       "💨",
	"tornado":      "🌪️",
}

const genericWeatherIcon = "🌤️"

// IconForCondition returns the display icon for an upstream condition string
func IconForCondition(condition string) string {
	if icon, ok := weatherIcons[strings.ToLower(condition)]; ok {
		return icon
	}
	return genericWeatherIcon
}

// BucketForCondition maps a normalized condition to the coarse weather bucket
// keying suggestion lookup. Unknown or absent conditions default to sunny.
func BucketForCondition(condition string) models.WeatherBucket {
	switch strings.ToLower(condition) {
	case "clouds", "mist", "fog", "haze":
		return models.BucketCloudy
	case "rain", "drizzle", "thunderstorm", "snow", "squall":
		return models.BucketRainy
	default:
		return models.BucketSunny
	}
}

// BucketForWeather resolves the bucket from an optional snapshot
func BucketForWeather(weather *models.WeatherSnapshot) models.WeatherBucket {
	if weather == nil {
		return models.BucketSunny
	}
	return BucketForCondition(weather.Condition)
}
