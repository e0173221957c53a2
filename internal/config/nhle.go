package config

const (
	envNhleBaseURL = "NHLE_BASE_URL"

	defaultNhleBaseURL = "https://api-web.nhle.com/v1"
)

// NhleConfig controls how we talk to the NHL api-web API.
type NhleConfig struct {
	BaseURL string
}

func loadNhle() NhleConfig {
	return NhleConfig{
		BaseURL: envOrDefault(envNhleBaseURL, defaultNhleBaseURL),
	}
}
