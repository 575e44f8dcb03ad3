package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"

	"github.com/golang-jwt/jwt/v4"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validateServiceConfiguration(errs, conf.Service)
	validateServerConfiguration(errs, conf.Server)
	validatePaypalConfiguration(errs, conf.Paypal)
	validateSecurityConfiguration(errs, conf.Security)
	validateLoggingConfiguration(errs, conf.Logging)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

const redirectUrlPattern = "^https?://.+$"

func validateServiceConfiguration(errs url.Values, c ServiceConfig) {
	checkLength(errs, 1, 256, "service.name", c.Name)
}

func validateServerConfiguration(errs url.Values, c ServerConfig) {
	checkIntValueRange(errs, 1, 65535, "server.port", c.Port)
	checkIntValueRange(errs, 1, 300, "server.read_timeout_seconds", c.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "server.write_timeout_seconds", c.WriteTimeout)
	checkIntValueRange(errs, 1, 300, "server.idle_timeout_seconds", c.IdleTimeout)
}

var allowedModes = []PaypalMode{ModeSandbox, ModeLive}

func validatePaypalConfiguration(errs url.Values, c PaypalConfig) {
	if notInAllowedValues(allowedModes[:], c.Mode) {
		errs.Add("paypal.mode", "must be one of sandbox, live")
	}
	checkLength(errs, 1, 256, "paypal.client_id", c.ClientID)
	checkLength(errs, 1, 256, "paypal.client_secret", c.ClientSecret)
	if violatesPattern(redirectUrlPattern, c.ReturnURL) {
		errs.Add("paypal.return_url", "must start with http:// or https://")
	}
	if violatesPattern(redirectUrlPattern, c.CancelURL) {
		errs.Add("paypal.cancel_url", "must start with http:// or https://")
	}
	checkIntValueRange(errs, 1, 300, "paypal.request_timeout_seconds", c.RequestTimeout)
}

func validateSecurityConfiguration(errs url.Values, c SecurityConfig) {
	checkLength(errs, 16, 256, "security.fixed_token.api", c.Fixed.Api)

	for i, keyStr := range c.Oidc.TokenPublicKeysPEM {
		if _, err := jwt.ParseRSAPublicKeyFromPEM([]byte(keyStr)); err != nil {
			errs.Add(fmt.Sprintf("security.oidc.token_public_keys_PEM[%d]", i),
				fmt.Sprintf("failed to parse RSA public key in PEM format: %s", err.Error()))
		}
	}
	if len(c.Oidc.TokenPublicKeysPEM) > 0 {
		checkLength(errs, 1, 256, "security.oidc.admin_role", c.Oidc.AdminRole)
	}
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if notInAllowedValues(allowedSeverities[:], c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkLength(errs url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		val := errs[k]
		logFunc("configuration error: %s: %s", key, val[0])
	}
}
