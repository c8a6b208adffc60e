package handler

import (
	"net/http"

	"farmgrid/internal/delivery/http/response"
	domainerrors "farmgrid/internal/domain/errors"
	"farmgrid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OTPHandler exposes the verification code endpoints.
type OTPHandler struct {
	otp usecase.OTPUsecase
}

// NewOTPHandler is the constructor for OTPHandler.
func NewOTPHandler(otp usecase.OTPUsecase) *OTPHandler {
	return &OTPHandler{
		otp: otp,
	}
}

type sendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// Send handles POST /auth/otp/request.
func (h *OTPHandler) Send(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("bind otp send request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.otp.Issue(c.Request().Context(), req.Phone); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Verify handles POST /auth/otp/verify.
func (h *OTPHandler) Verify(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("bind otp verify request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.otp.Verify(c.Request().Context(), req.Phone, req.Code); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Verification successful")
}
