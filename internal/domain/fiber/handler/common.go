package handler

import (
	"errors"

	"github.com/careerconnect/backend/internal/usecase"
	"github.com/careerconnect/backend/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderAccountID carries the verified account id. The identity provider in
// front of this service sets it; the core never authenticates.
const HeaderAccountID = "X-Account-ID"

func accountID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Get(HeaderAccountID)
	if raw == "" {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "missing account id",
		})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "malformed account id",
		}, err)
	}
	return id, nil
}

// domainError maps usecase error kinds onto the response envelope. Rule
// violations keep their specific status so clients can message users;
// everything unexpected is a store failure.
func domainError(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request",
			Details: verr.Fields,
		})
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound),
		errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrCompanyNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrAlreadyApplied),
		errors.Is(err, usecase.ErrCompanyExists):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrJobInactive),
		errors.Is(err, usecase.ErrInvalidTransition):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNotJobOwner):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "temporary storage failure, please retry",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "internal error",
	}, err)
}

func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed " + name,
		}, err)
	}
	return id, nil
}
