package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateReservation(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	input, ok := c.Locals("createReservationInput").(*model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var reservation model.Reservation
	copier.Copy(&reservation, input)
	reservation.CustomerID = claim.UserId
	reservation.Status = constants.RESERVATION_STATUS_PENDING

	if err := database.DB.Create(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating reservation", err)
	}

	helper.LogActivity(claim.Email, "create reservation")

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

func GetMyReservations(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	var reservations model.Reservations
	if err := database.DB.
		Where("customer_id = ?", claim.UserId).
		Order("date desc, time desc").
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching reservations", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

// CancelMyReservation lets a customer cancel their own reservation only.
func CancelMyReservation(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)
	id, _ := c.Locals("inputId").(int)

	var reservation model.Reservation
	if err := database.DB.
		Where("id = ? AND customer_id = ?", id, claim.UserId).
		First(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}

	if err := database.DB.Model(&reservation).
		Update("status", constants.RESERVATION_STATUS_CANCELLED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error cancelling reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func GetAllReservations(c *fiber.Ctx) error {
	var reservations model.Reservations
	if err := database.DB.
		Preload("Customer").
		Order("date desc, time desc").
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching reservations", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

// ConfirmReservation flips the status and mails the customer. The email is
// best effort, a delivery failure does not fail the confirmation.
func ConfirmReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var reservation model.Reservation
	if err := database.DB.Preload("Customer").First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}

	if err := database.DB.Model(&reservation).
		Update("status", constants.RESERVATION_STATUS_CONFIRMED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error confirming reservation", err)
	}

	if reservation.Customer != nil && Mailer != nil {
		if err := Mailer.Send(reservation.Customer.Email, "reservationConfirmation", fiber.Map{
			"PartySize": reservation.PartySize,
			"Date":      reservation.Date,
			"Time":      reservation.Time,
		}); err != nil {
			log.Printf("reservation confirmation email failed for reservation %d: %v", reservation.ID, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func CancelReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}

	if err := database.DB.Model(&reservation).
		Update("status", constants.RESERVATION_STATUS_CANCELLED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error cancelling reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}
