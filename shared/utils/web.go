package utils

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/parlor-chat/parlor/shared/errors"
	"github.com/parlor-chat/parlor/shared/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate decodes JSON from r into body and checks validate tags.
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}

// ValidateStruct checks validate tags on an already-decoded value.
func ValidateStruct(body any) error {
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}
