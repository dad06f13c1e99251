package postgres

import (
	"context"
	"database/sql"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/repository"
)

type appointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindAll(ctx context.Context) []domain.Appointment {
	query := `SELECT appointment_id, appointment_date, appointment_time, location, holiday_flag
	          FROM appointment ORDER BY appointment_date DESC, appointment_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "appointment")
		return []domain.Appointment{}
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context) []domain.Appointment {
	query := `SELECT appointment_id, appointment_date, appointment_time, location, holiday_flag
	          FROM appointment WHERE appointment_date >= CURRENT_DATE
	          ORDER BY appointment_date ASC, appointment_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "appointment")
		return []domain.Appointment{}
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int32) *domain.Appointment {
	query := `SELECT appointment_id, appointment_date, appointment_time, location, holiday_flag
	          FROM appointment WHERE appointment_id = $1`
	var a domain.Appointment
	var clock string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Date, &clock, &a.Location, &a.Holiday)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.DatabaseResult("SELECT", 0, err, "table", "appointment", "id", id)
		}
		return nil
	}
	a.Time = normalizeClock(clock)
	return &a
}

func (r *appointmentRepository) Save(ctx context.Context, a *domain.Appointment) bool {
	query := `INSERT INTO appointment (appointment_date, appointment_time, location, holiday_flag)
	          VALUES ($1, $2, $3, $4) RETURNING appointment_id`
	err := r.db.QueryRowContext(ctx, query, a.Date, a.Time, a.Location, a.Holiday).Scan(&a.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "appointment")
		return false
	}
	return true
}

func (r *appointmentRepository) Update(ctx context.Context, a *domain.Appointment) bool {
	query := `UPDATE appointment SET appointment_date = $1, appointment_time = $2, location = $3, holiday_flag = $4
	          WHERE appointment_id = $5`
	res, err := r.db.ExecContext(ctx, query, a.Date, a.Time, a.Location, a.Holiday, a.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "table", "appointment", "id", a.ID)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func (r *appointmentRepository) Delete(ctx context.Context, id int32) bool {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointment WHERE appointment_id = $1`, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "table", "appointment", "id", id)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func collectAppointments(rows *sql.Rows) []domain.Appointment {
	appointments := []domain.Appointment{}
	for rows.Next() {
		var a domain.Appointment
		var clock string
		if err := rows.Scan(&a.ID, &a.Date, &clock, &a.Location, &a.Holiday); err != nil {
			logger.DatabaseResult("SELECT", int64(len(appointments)), err, "table", "appointment")
			return []domain.Appointment{}
		}
		a.Time = normalizeClock(clock)
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(appointments)), err, "table", "appointment")
		return []domain.Appointment{}
	}
	return appointments
}

// normalizeClock trims "HH:MM:SS" time columns down to "HH:MM".
func normalizeClock(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}
