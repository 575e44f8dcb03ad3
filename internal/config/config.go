// Configuration is loaded from a yaml file placed on the server. Unknown fields
// are rejected so typos in the file are caught at startup, and the loaded values
// are validated against the rules in validation.go before the service comes up.

package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type PaypalMode string

const (
	ModeSandbox PaypalMode = "sandbox"
	ModeLive    PaypalMode = "live"
)

type (
	Application struct {
		Service  ServiceConfig  `yaml:"service"`
		Server   ServerConfig   `yaml:"server"`
		Paypal   PaypalConfig   `yaml:"paypal"`
		Security SecurityConfig `yaml:"security"`
		Logging  LoggingConfig  `yaml:"logging"`
	}

	ServiceConfig struct {
		Name string `yaml:"name"`
		// AllowedCurrencies limits the currencies accepted for new orders and refunds.
		// An empty list means no restriction.
		AllowedCurrencies []string `yaml:"allowed_currencies"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	PaypalConfig struct {
		// Mode selects the provider host, sandbox or live.
		Mode         PaypalMode `yaml:"mode"`
		ClientID     string     `yaml:"client_id"`
		ClientSecret string     `yaml:"client_secret"`
		// ReturnURL and CancelURL are the redirect targets used when an order
		// request does not bring its own.
		ReturnURL string `yaml:"return_url"`
		CancelURL string `yaml:"cancel_url"`
		// BrandName is shown on the provider's checkout page when set.
		BrandName string `yaml:"brand_name"`
		// RequestTimeout bounds every outbound call to the provider.
		RequestTimeout int `yaml:"request_timeout_seconds"`
	}

	SecurityConfig struct {
		Fixed FixedTokenConfig    `yaml:"fixed_token"`
		Oidc  OpenIdConnectConfig `yaml:"oidc"`
		Cors  CorsConfig          `yaml:"cors"`
	}

	FixedTokenConfig struct {
		Api string `yaml:"api"`
	}

	OpenIdConnectConfig struct {
		TokenCookieName    string   `yaml:"token_cookie_name"`
		AdminRole          string   `yaml:"admin_role"`
		TokenPublicKeysPEM []string `yaml:"token_public_keys_PEM"`
	}

	CorsConfig struct {
		DisableCors bool   `yaml:"disable"`
		AllowOrigin string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
		Style    string `yaml:"style"`
	}
)

func UnmarshalFromYamlConfiguration(file io.Reader) (*Application, error) {
	d := yaml.NewDecoder(file)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	applyDefaults(conf)

	return conf, nil
}

func LoadConfiguration(configFilePath string) (*Application, error) {
	file, err := os.Open(configFilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return UnmarshalFromYamlConfiguration(file)
}

func applyDefaults(conf *Application) {
	if conf.Server.Port == 0 {
		conf.Server.Port = 8080
	}
	if conf.Server.ReadTimeout == 0 {
		conf.Server.ReadTimeout = 30
	}
	if conf.Server.WriteTimeout == 0 {
		conf.Server.WriteTimeout = 30
	}
	if conf.Server.IdleTimeout == 0 {
		conf.Server.IdleTimeout = 120
	}
	if conf.Paypal.Mode == "" {
		conf.Paypal.Mode = ModeSandbox
	}
	if conf.Paypal.RequestTimeout == 0 {
		conf.Paypal.RequestTimeout = 30
	}
	if conf.Logging.Severity == "" {
		conf.Logging.Severity = "INFO"
	}
}
