package utils

import (
	"log"
	"studybud/database"
	"studybud/models"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REVIEW-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReviewScheduler starts the daily job that reminds users about
// flashcards due for review.
func StartReviewScheduler() *cron.Cron {
	c := cron.New()

	// Every day at 08:00 server time
	if _, err := c.AddFunc("0 8 * * *", ProcessDueReviewReminders); err != nil {
		log.Fatalf("Failed to register review reminder job: %v", err)
	}

	c.Start()
	logScheduler("Review reminder scheduler started")
	return c
}

// ProcessDueReviewReminders emails every user who has at least one flashcard
// due today.
func ProcessDueReviewReminders() {
	db := database.Database.Db
	endOfDay := now.EndOfDay()

	type dueRow struct {
		UserID   uint
		DueCount int
	}

	var rows []dueRow
	if err := db.Table("flashcard_reviews").
		Select("user_id, count(*) as due_count").
		Where("next_review_date <= ?", endOfDay).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		logScheduler("Error fetching due reviews: " + err.Error())
		return
	}

	for _, row := range rows {
		var user models.User
		if err := db.Select("name, email").
			Where("id = ? AND is_deleted = false", row.UserID).
			First(&user).Error; err != nil || user.Email == "" {
			continue
		}

		if err := SendReviewReminderEmail(user.Email, user.Name, row.DueCount); err != nil {
			logScheduler("Error sending reminder to " + user.Email + ": " + err.Error())
		}
	}
}
