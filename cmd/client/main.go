package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/clipcast/client/internal/app"
)

type configVar[T any] struct {
	envKey       string
	flagKey      string
	defaultValue T
}

var (
	apiBaseURL = configVar[string]{
		envKey:       "CLIPCAST_API_BASE_URL",
		flagKey:      "api-base-url",
		defaultValue: "https://take-home-assessment-423502.uc.r.appspot.com/api",
	}
	userId = configVar[string]{
		envKey:       "CLIPCAST_USER_ID",
		flagKey:      "user-id",
		defaultValue: "",
	}
	logLevel = configVar[string]{
		envKey:       "CLIPCAST_LOG_LEVEL",
		flagKey:      "log-level",
		defaultValue: "INFO",
	}
	logPath = configVar[string]{
		envKey:       "CLIPCAST_LOG_PATH",
		flagKey:      "log-path",
		defaultValue: "",
	}
	requestTimeout = configVar[int]{
		envKey:       "CLIPCAST_REQUEST_TIMEOUT",
		flagKey:      "request-timeout",
		defaultValue: 15,
	}
	requestsPerSecond = configVar[float64]{
		envKey:       "CLIPCAST_REQUESTS_PER_SECOND",
		flagKey:      "requests-per-second",
		defaultValue: 5,
	}
)

func loadAppConfig() *app.AppConfig {
	pflag.String(apiBaseURL.flagKey, apiBaseURL.defaultValue, "Video store API base URL")
	pflag.String(userId.flagKey, userId.defaultValue, "User id scoping the catalog")
	pflag.String(logLevel.flagKey, logLevel.defaultValue, "Logging level")
	pflag.String(logPath.flagKey, logPath.defaultValue, "Log file path (stderr if empty)")
	pflag.Int(requestTimeout.flagKey, requestTimeout.defaultValue, "Request timeout in seconds")
	pflag.Float64(requestsPerSecond.flagKey, requestsPerSecond.defaultValue, "Outgoing request rate limit")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	viper.BindEnv(apiBaseURL.flagKey, apiBaseURL.envKey)
	viper.BindEnv(userId.flagKey, userId.envKey)
	viper.BindEnv(logLevel.flagKey, logLevel.envKey)
	viper.BindEnv(logPath.flagKey, logPath.envKey)
	viper.BindEnv(requestTimeout.flagKey, requestTimeout.envKey)
	viper.BindEnv(requestsPerSecond.flagKey, requestsPerSecond.envKey)

	viper.SetDefault(apiBaseURL.flagKey, apiBaseURL.defaultValue)
	viper.SetDefault(userId.flagKey, userId.defaultValue)
	viper.SetDefault(logLevel.flagKey, logLevel.defaultValue)
	viper.SetDefault(logPath.flagKey, logPath.defaultValue)
	viper.SetDefault(requestTimeout.flagKey, requestTimeout.defaultValue)
	viper.SetDefault(requestsPerSecond.flagKey, requestsPerSecond.defaultValue)

	config := &app.AppConfig{
		APIBaseURL:        viper.GetString(apiBaseURL.flagKey),
		UserId:            viper.GetString(userId.flagKey),
		LogLevel:          viper.GetString(logLevel.flagKey),
		LogPath:           viper.GetString(logPath.flagKey),
		RequestTimeout:    viper.GetInt(requestTimeout.flagKey),
		RequestsPerSecond: viper.GetFloat64(requestsPerSecond.flagKey),
	}

	return config
}

func main() {
	ctx := context.Background()

	appConfig := loadAppConfig()
	if err := appConfig.Validate(); err != nil {
		log.Fatal(err)
	}

	jsonConfig, _ := json.MarshalIndent(appConfig, "", "  ")
	fmt.Printf("starting client with config: %s\n", jsonConfig)

	if err := app.Run(ctx, appConfig); err != nil {
		log.Fatal(err)
	}
}
