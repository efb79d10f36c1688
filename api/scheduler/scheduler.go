package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
	templates "github.com/kurup-associates/legal-office-api/templates/html"
)

// reminderWindowDays is how far ahead the hearing digest looks
const reminderWindowDays = 14

// Scheduler handles periodic background jobs for the office
type Scheduler struct {
	cron       *cron.Cron
	OrderDB    databases.InterimOrderDatabase
	ClerkDB    databases.ClerkUserDatabase
	LockDB     databases.SchedulerLockDatabase
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(
	orderDB databases.InterimOrderDatabase,
	clerkDB databases.ClerkUserDatabase,
	lockDB databases.SchedulerLockDatabase,
) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		OrderDB:    orderDB,
		ClerkDB:    clerkDB,
		LockDB:     lockDB,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Send the upcoming hearings digest daily at 6 AM UTC, before the office opens
	_, err := s.cron.AddFunc("0 6 * * *", s.sendHearingDigest)
	if err != nil {
		zap.S().Errorw("failed to register hearing digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Hearing reminder scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Hearing reminder scheduler stopped")
}

// sendHearingDigest emails every active clerk a digest of interim orders whose
// next hearing date falls inside the reminder window
func (s *Scheduler) sendHearingDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Try to acquire distributed lock (10 minute TTL) so only one pod sends
	acquired, err := s.LockDB.TryAcquireLock(ctx, "hearing_digest_job", s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for hearing digest job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Hearing digest job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, "hearing_digest_job", s.instanceID)

	zap.S().Infow("Running hearing digest job", "instance", s.instanceID)

	orders, err := s.OrderDB.Find(ctx, databases.NextDateWindow(time.Now().UTC(), reminderWindowDays))
	if err != nil {
		zap.S().Errorw("failed to find upcoming hearings", "error", err)
		return
	}
	if len(orders) == 0 {
		zap.S().Info("No upcoming hearings in the reminder window")
		return
	}

	lines := make([]templates.HearingLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, templates.HearingLine{
			CaseName: o.CaseName,
			CaseNo:   o.CaseNo,
			CaseYear: o.CaseYear,
			NextDate: o.NextDate,
		})
	}
	htmlContent, plainText := templates.RenderHearingDigestEmail(lines)

	clerks, err := s.ClerkDB.Find(ctx, bson.M{
		"status": bson.M{"$in": []string{models.ClerkStatusApproved, models.ClerkStatusActive}},
	})
	if err != nil {
		zap.S().Errorw("failed to find active clerks for digest", "error", err)
		return
	}

	sent := 0
	for _, clerk := range clerks {
		if err := s.sendEmail(clerk.Email, clerk.FullName, "Upcoming Hearings", htmlContent, plainText); err == nil {
			sent++
		}
	}
	zap.S().Infow("Hearing digest sent", "hearings", len(orders), "recipients", sent)
}

// sendEmail delivers one digest email through SendGrid
func (s *Scheduler) sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("Kurup & Associates", "no-reply@kurupassociates.in")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send digest email", "error", err, "to", toEmail)
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "to", toEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}
