package constants

import "github.com/go-playground/validator/v10"

type contextKey string

const (
	LoggerKey contextKey = "logger"
	RunIDKey  contextKey = "run_id"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
