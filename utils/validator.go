package utils

import (
	"strings"
	"sync"

	"github.com/creasty/defaults"
	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/gobwas/glob"
	"gopkg.in/go-playground/validator.v9"
)

// Validator implementation.
type validatorProvider struct {
	sync.Mutex
	validator *validator.Validate
	logger    common.ILoggerProvider
}

// NewValidator constructs a new validator.
func NewValidator(logger common.ILoggerProvider) providers.IValidatorProvider {
	val := &validatorProvider{
		logger: logger,
	}
	v := validator.New()
	loadNewValidator(v, logger, "port", port)
	loadNewValidator(v, logger, "topic", topic)
	loadNewValidator(v, logger, "origin", origin)

	val.validator = v
	return val
}

// SetLogger updates the logger.
// Since logger is loaded after first init, we need to re-assign it.
func (v *validatorProvider) SetLogger(logger common.ILoggerProvider) {
	v.logger = logger
}

// Validate sets default values and performs validation of a config structure.
func (v *validatorProvider) Validate(object interface{}) bool {
	v.Lock()
	defer v.Unlock()

	err := defaults.Set(object)

	if err != nil {
		v.logger.Error("Failed to set default field values", err)
		return false
	}

	err = v.validator.Struct(object)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			v.logger.Error("Failed to validate structure", err)
			return false
		}

		for _, e := range validationErrors {
			v.logger.Warn("Validation error", common.LogFieldToken, e.Namespace())
		}

		return false
	}
	return true
}

// Port type validation.
func port(fl validator.FieldLevel) bool {
	return isPort(fl.Field().Int())
}

// MQTT topic prefix validation: no wildcards, no leading or trailing separator.
func topic(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	if "" == t {
		return false
	}

	if strings.ContainsAny(t, "#+") {
		return false
	}

	return !strings.HasPrefix(t, "/") && !strings.HasSuffix(t, "/")
}

// Websocket origin pattern validation.
func origin(fl validator.FieldLevel) bool {
	o := fl.Field().String()
	if "" == o {
		return false
	}

	_, err := glob.Compile(o)
	return err == nil
}

// Validates whether value could be used as a port.
func isPort(val int64) bool {
	return val > 0 && val <= 65535
}

// Attempt to register a new validator
func loadNewValidator(validator *validator.Validate, logger common.ILoggerProvider,
	name string, function validator.Func) {
	if err := validator.RegisterValidation(name, function); err != nil {
		logger.Error("Failed to register validator type", err, "type", name)
	}
}
