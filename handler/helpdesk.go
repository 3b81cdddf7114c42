package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	input, ok := c.Locals("createTicketInput").(*model.CreateTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	ticket := model.HelpDeskTicket{
		CustomerID: claim.UserId,
		Subject:    input.Subject,
		Message:    input.Message,
		Status:     constants.TICKET_STATUS_OPEN,
	}

	if err := database.DB.Create(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating ticket", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

func GetMyTickets(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	var tickets model.HelpDeskTickets
	if err := database.DB.
		Preload("Replies").
		Where("customer_id = ?", claim.UserId).
		Order("created_at desc").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching tickets", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

func GetAllTickets(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	condition := database.DB.Model(&model.HelpDeskTicket{})

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)

	var tickets model.HelpDeskTickets
	if err := condition.
		Preload("Replies").
		Preload("Customer").
		Order("created_at desc").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching tickets", err)
	}

	response := &model.ResponseCustom{
		Rows:       tickets,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// ReplyTicket appends a reply and moves an open ticket to in progress.
// Replies record whether they came from staff or admin so the customer UI
// can badge them.
func ReplyTicket(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)
	id, _ := c.Locals("inputId").(int)

	input, ok := c.Locals("replyTicketInput").(*model.ReplyTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var ticket model.HelpDeskTicket
	if err := database.DB.First(&ticket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ticket not found", err)
	}

	isStaff := claim.Role == constants.ROLE_STAFF
	isAdmin := claim.Role == constants.ROLE_ADMIN
	if ticket.CustomerID != claim.UserId && !isStaff && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Unauthorized", errors.New("ticket belongs to another customer"))
	}

	reply := model.TicketReply{
		TicketId: ticket.ID,
		Message:  input.Reply,
		IsStaff:  isStaff,
		IsAdmin:  isAdmin,
	}
	if err := database.DB.Create(&reply).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error saving reply", err)
	}

	if (isStaff || isAdmin) && ticket.Status == constants.TICKET_STATUS_OPEN {
		database.DB.Model(&ticket).Update("status", constants.TICKET_STATUS_IN_PROGRESS)
	}

	if err := database.DB.Preload("Replies").First(&ticket, ticket.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

func ResolveTicket(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var ticket model.HelpDeskTicket
	if err := database.DB.First(&ticket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ticket not found", err)
	}

	if err := database.DB.Model(&ticket).
		Update("status", constants.TICKET_STATUS_RESOLVED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error resolving ticket", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}
