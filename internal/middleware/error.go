package middleware

import (
	"errors"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorHandler maps domain errors onto HTTP statuses. Validation failures
// carry the complete message list in details; internal causes are logged
// but never echoed to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := statusForCode(domainErr.Code)
		body := errorBody{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
		}
		if domainErr.Code == domain.CodeValidation {
			body.Details = domainErr.ValidationMessages()
		}
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("Request failed",
				zap.String("path", c.Path()),
				zap.String("code", string(domainErr.Code)),
				zap.Error(err))
		}
		return c.Status(status).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(errorBody{
			Code:    string(domain.CodeInternal),
			Message: fiberErr.Message,
		})
	}

	logger.Get().Error("Unhandled error",
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
		Code:    string(domain.CodeInternal),
		Message: "An internal error occurred.",
	})
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeInvalidInput, domain.CodeValidation:
		return fiber.StatusBadRequest
	case domain.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case domain.CodeForbidden:
		return fiber.StatusForbidden
	case domain.CodeNotFound, domain.CodeExamNotFound, domain.CodeQuestionNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
