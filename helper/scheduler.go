package helper

import (
	"cafeteria_manager/database"
	"cafeteria_manager/model"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jordan-wright/email"
	"github.com/robfig/cron/v3"
)

var promotionScheduler *cron.Cron

func StartPromotionScheduler() {
	promotionScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := promotionScheduler.AddFunc("*/5 * * * *", deactivateExpiredPromotions)
	if err != nil {
		log.Printf("failed to start promotion scheduler: %v", err)
		return
	}

	promotionScheduler.Start()
	log.Println("Promotion scheduler started (every 5 minutes)")
}

func deactivateExpiredPromotions() {
	now := time.Now()
	result := database.DB.Model(&model.Promotion{}).
		Where("active = ? AND expiration_date < ?", true, now).
		Update("active", false)

	if result.Error != nil {
		log.Printf("failed to expire promotions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired promotions", result.RowsAffected)
	}
}

func StopPromotionScheduler() {
	if promotionScheduler != nil {
		promotionScheduler.Stop()
	}
}

var stockScheduler gocron.Scheduler

// SendLowStockDigest mails the admin address a plain-text list of menu
// items at or below their restock threshold. One attempt, logged on failure.
func SendLowStockDigest() {
	log.Println("[CRON] SendLowStockDigest triggered")

	db := database.DB
	var items []model.MenuItem
	if err := db.Where("quantity <= threshold").Find(&items).Error; err != nil {
		log.Printf("failed to scan menu stock: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("The following menu items are running low:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s: %d left (threshold %d)\n", item.Name, item.Quantity, item.Threshold)
	}

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{os.Getenv("ADMIN_EMAIL")}
	e.Subject = "Low stock alert"
	e.Text = []byte(b.String())

	addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
	if err := e.Send(addr, auth); err != nil {
		log.Printf("failed to send low stock digest: %v", err)
	}
}

func StartStockScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	stockScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(6, 0, 0),
			),
		),
		gocron.NewTask(SendLowStockDigest),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Stock scheduler started (daily at 06:00)")
}

func StopStockScheduler() {
	if stockScheduler != nil {
		_ = stockScheduler.Shutdown()
	}
}
