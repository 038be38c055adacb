package server

import "github.com/spf13/viper"

// Settings carries the dev server configuration.
type Settings struct {
	Port       int
	ProjectDir string
	AssistURL  string
	AssistKey  string
	LogLevel   string
}

// LoadSettings reads verandaplanner.yaml from the working directory when
// present. The defaults alone are a complete configuration; a missing
// file is not an error.
func LoadSettings() Settings {
	viper.SetDefault("port", 8422)
	viper.SetDefault("projectDir", ".")
	viper.SetDefault("assist.serverUrl", "")
	viper.SetDefault("assist.apiKey", "")
	viper.SetDefault("logLevel", "info")

	viper.SetConfigName("verandaplanner")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	return Settings{
		Port:       viper.GetInt("port"),
		ProjectDir: viper.GetString("projectDir"),
		AssistURL:  viper.GetString("assist.serverUrl"),
		AssistKey:  viper.GetString("assist.apiKey"),
		LogLevel:   viper.GetString("logLevel"),
	}
}
