package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDataFile         = "data_file"
	KeyReportOutputDir  = "report.output_dir"
	KeyServePort        = "serve.port"
	KeyServeOpenBrowser = "serve.open_browser"
)

type Config struct {
	DataFile string       `mapstructure:"data_file" validate:"required"`
	Report   ReportConfig `mapstructure:"report"`
	Serve    ServeConfig  `mapstructure:"serve"`
}

type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir" validate:"required"`
}

type ServeConfig struct {
	Port        int  `mapstructure:"port" validate:"required,min=1,max=65535"`
	OpenBrowser bool `mapstructure:"open_browser"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# timecard configuration
data_file: "timecard.json"

report:
  output_dir: "."

serve:
  port: 8080
  open_browser: true
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, "timecard.json")
	v.SetDefault(KeyReportOutputDir, ".")
	v.SetDefault(KeyServePort, 8080)
	v.SetDefault(KeyServeOpenBrowser, true)
}
