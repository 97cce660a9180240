package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Machine-readable failure codes carried alongside human messages. The login
// fallback on the client keys off AccountNotFound specifically, so these are
// part of the API contract, not just diagnostics.
const (
	CodeValidationError    = "validation_error"
	CodeEmailTaken         = "email_taken"
	CodeAccountNotFound    = "account_not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidToken       = "invalid_token"
	CodeInvalidReference   = "invalid_reference"
	CodeNotFound           = "not_found"
	CodeInternal           = "internal_error"
)

// APIError is a failure the handler wants rendered as {"message", "code"}.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError constructs an APIError.
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// ErrorHandler renders every handler error as a JSON body with a message and
// a code, so clients never have to string-match on wording.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"message": apiErr.Message,
			"code":    apiErr.Code,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := CodeInternal
		switch fiberErr.Code {
		case fiber.StatusBadRequest:
			code = CodeValidationError
		case fiber.StatusUnauthorized:
			code = CodeInvalidToken
		case fiber.StatusNotFound:
			code = CodeNotFound
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
			"code":    code,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
		"code":    CodeInternal,
	})
}
