package jobs

import (
	"context"
	"time"

	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/utils"
)

// SendFormReminders emails members whose forms are still pending past the
// expected return date.
func (jr *JobRunner) SendFormReminders() {
	jr.runWithRecovery("SendFormReminders", func() {
		if jr.services.Email == nil {
			logger.Warn("No email service configured, skipping form reminders")
			return
		}

		ctx := context.Background()

		query := `
			SELECT f.form_id, f.form_type, f.return_date,
			       m.first_name, m.last_name, m.email
			FROM form f
			JOIN member m ON f.member_id = m.member_id
			WHERE f.status = 'PENDING'
			  AND f.return_date IS NOT NULL
			  AND f.return_date < CURRENT_DATE
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query overdue forms", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				formID     int32
				formType   string
				returnDate time.Time
				firstName  string
				lastName   string
				email      string
			)

			if err := rows.Scan(&formID, &formType, &returnDate, &firstName, &lastName, &email); err != nil {
				logger.Error("Failed to scan overdue form", "error", err)
				continue
			}
			if email == "" {
				continue
			}

			memberName := firstName + " " + lastName
			due := utils.FormatDate(returnDate)
			if err := jr.services.Email.SendFormReminder(email, memberName, formType, due); err != nil {
				logger.Error("Failed to send form reminder email",
					"form_id", formID,
					"email", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent form reminder",
				"form_id", formID,
				"email", email)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue forms", "error", err)
		}

		logger.Info("Form reminders sent", "count", count)
	})
}
