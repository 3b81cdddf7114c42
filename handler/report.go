package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// reportRange parses ?start=YYYY-MM-DD&end=YYYY-MM-DD, defaulting to the
// last 30 days.
func reportRange(c *fiber.Ctx) (time.Time, time.Time) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if v := c.Query("start"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			start = t
		}
	}
	if v := c.Query("end"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return start, end
}

func GetSalesReport(c *fiber.Ctx) error {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			date = t
		}
	}

	daily, err := Analytics.GetDailySales(date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":       date.Format("2006-01-02"),
		"totalSales": daily.TotalSales,
		"orderCount": daily.OrderCount,
	})
}

func GetPopularItemsReport(c *fiber.Ctx) error {
	start, end := reportRange(c)

	items, err := Analytics.GetPopularItems(start, end)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
		"items": items,
	})
}
