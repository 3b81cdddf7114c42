package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/utils"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
)

const otpTTL = 10 * time.Minute

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

func SendOTP(c *fiber.Ctx) error {
	type OTPRequest struct {
		Email string `json:"email"`
	}

	var req OTPRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email is required", err)
	}

	code := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	if err := database.Redis.Set(c.Context(), otpKey(req.Email), code, otpTTL).Err(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save OTP", err)
	}

	if err := Mailer.Send(req.Email, "otpCode", struct{ Code string }{Code: code}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send OTP", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "OTP sent successfully"})
}

func VerifyOTP(c *fiber.Ctx) error {
	type VerifyRequest struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.OTP == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and OTP are required", err)
	}

	stored, err := database.Redis.Get(c.Context(), otpKey(req.Email)).Result()
	if err != nil || stored != req.OTP {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid OTP", errors.New("otp mismatch or expired"))
	}

	if err := database.Redis.Del(c.Context(), otpKey(req.Email)).Err(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "OTP verified successfully"})
}
