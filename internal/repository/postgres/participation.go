package postgres

import (
	"context"
	"database/sql"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/repository"
)

type participationRepository struct {
	db *sql.DB
}

func NewParticipationRepository(db *sql.DB) repository.ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) FindAll(ctx context.Context) []domain.Participation {
	query := `SELECT participation_id, member_id, appointment_id, form_id, status
	          FROM participation ORDER BY participation_id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "participation")
		return []domain.Participation{}
	}
	defer rows.Close()
	return collectParticipations(rows)
}

func (r *participationRepository) FindByID(ctx context.Context, id int32) *domain.Participation {
	query := `SELECT participation_id, member_id, appointment_id, form_id, status
	          FROM participation WHERE participation_id = $1`
	var p domain.Participation
	var formID sql.NullInt32
	var statusStr string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.MemberID, &p.AppointmentID, &formID, &statusStr)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.DatabaseResult("SELECT", 0, err, "table", "participation", "id", id)
		}
		return nil
	}
	if formID.Valid {
		p.FormID = formID.Int32
	}
	p.Status = domain.ParseParticipationStatus(statusStr)
	return &p
}

func (r *participationRepository) FindByMember(ctx context.Context, memberID int32) []domain.Participation {
	query := `SELECT participation_id, member_id, appointment_id, form_id, status
	          FROM participation WHERE member_id = $1 ORDER BY participation_id DESC`
	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "participation", "member_id", memberID)
		return []domain.Participation{}
	}
	defer rows.Close()
	return collectParticipations(rows)
}

func (r *participationRepository) FindByAppointment(ctx context.Context, appointmentID int32) []domain.Participation {
	query := `SELECT participation_id, member_id, appointment_id, form_id, status
	          FROM participation WHERE appointment_id = $1 ORDER BY participation_id DESC`
	rows, err := r.db.QueryContext(ctx, query, appointmentID)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "participation", "appointment_id", appointmentID)
		return []domain.Participation{}
	}
	defer rows.Close()
	return collectParticipations(rows)
}

func (r *participationRepository) Save(ctx context.Context, p *domain.Participation) bool {
	query := `INSERT INTO participation (member_id, appointment_id, form_id, status)
	          VALUES ($1, $2, $3, $4) RETURNING participation_id`
	err := r.db.QueryRowContext(ctx, query, p.MemberID, p.AppointmentID, nullableID(p.FormID), participationStatusOrDefault(p.Status)).Scan(&p.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "participation")
		return false
	}
	return true
}

func (r *participationRepository) Update(ctx context.Context, p *domain.Participation) bool {
	query := `UPDATE participation SET member_id = $1, appointment_id = $2, form_id = $3, status = $4
	          WHERE participation_id = $5`
	res, err := r.db.ExecContext(ctx, query, p.MemberID, p.AppointmentID, nullableID(p.FormID), participationStatusOrDefault(p.Status), p.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "table", "participation", "id", p.ID)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func (r *participationRepository) Delete(ctx context.Context, id int32) bool {
	res, err := r.db.ExecContext(ctx, `DELETE FROM participation WHERE participation_id = $1`, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "table", "participation", "id", id)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func collectParticipations(rows *sql.Rows) []domain.Participation {
	participations := []domain.Participation{}
	for rows.Next() {
		var p domain.Participation
		var formID sql.NullInt32
		var statusStr string
		if err := rows.Scan(&p.ID, &p.MemberID, &p.AppointmentID, &formID, &statusStr); err != nil {
			logger.DatabaseResult("SELECT", int64(len(participations)), err, "table", "participation")
			return []domain.Participation{}
		}
		if formID.Valid {
			p.FormID = formID.Int32
		}
		p.Status = domain.ParseParticipationStatus(statusStr)
		participations = append(participations, p)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(participations)), err, "table", "participation")
		return []domain.Participation{}
	}
	return participations
}

// nullableID maps form id 0, meaning no form attached, to SQL NULL.
func nullableID(id int32) any {
	if id <= 0 {
		return nil
	}
	return id
}

func participationStatusOrDefault(s domain.ParticipationStatus) string {
	if s == "" {
		s = domain.ParticipationConfirmed
	}
	return string(s)
}
