package postgres

import (
	"context"
	"database/sql"
	"time"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/repository"
)

type formRepository struct {
	db *sql.DB
}

func NewFormRepository(db *sql.DB) repository.FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) FindAll(ctx context.Context) []domain.Form {
	query := `SELECT form_id, form_type, issue_date, return_date, status, member_id
	          FROM form ORDER BY issue_date DESC, form_id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "form")
		return []domain.Form{}
	}
	defer rows.Close()
	return collectForms(rows)
}

func (r *formRepository) FindByID(ctx context.Context, id int32) *domain.Form {
	query := `SELECT form_id, form_type, issue_date, return_date, status, member_id
	          FROM form WHERE form_id = $1`
	var f domain.Form
	var returnDate sql.NullTime
	var statusStr string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Type, &f.IssueDate, &returnDate, &statusStr, &f.MemberID)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.DatabaseResult("SELECT", 0, err, "table", "form", "id", id)
		}
		return nil
	}
	if returnDate.Valid {
		t := returnDate.Time
		f.ReturnDate = &t
	}
	f.Status = domain.ParseFormStatus(statusStr)
	return &f
}

func (r *formRepository) SearchByType(ctx context.Context, term string) []domain.Form {
	query := `SELECT form_id, form_type, issue_date, return_date, status, member_id
	          FROM form WHERE form_type ILIKE $1 ORDER BY issue_date DESC, form_id DESC`
	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "form", "term", term)
		return []domain.Form{}
	}
	defer rows.Close()
	return collectForms(rows)
}

func (r *formRepository) Save(ctx context.Context, f *domain.Form) bool {
	query := `INSERT INTO form (form_type, issue_date, return_date, status, member_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING form_id`
	err := r.db.QueryRowContext(ctx, query, f.Type, f.IssueDate, nullableDate(f.ReturnDate), formStatusOrDefault(f.Status), f.MemberID).Scan(&f.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "form")
		return false
	}
	return true
}

func (r *formRepository) Update(ctx context.Context, f *domain.Form) bool {
	query := `UPDATE form SET form_type = $1, issue_date = $2, return_date = $3, status = $4, member_id = $5
	          WHERE form_id = $6`
	res, err := r.db.ExecContext(ctx, query, f.Type, f.IssueDate, nullableDate(f.ReturnDate), formStatusOrDefault(f.Status), f.MemberID, f.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "table", "form", "id", f.ID)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func (r *formRepository) Delete(ctx context.Context, id int32) bool {
	res, err := r.db.ExecContext(ctx, `DELETE FROM form WHERE form_id = $1`, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "table", "form", "id", id)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func collectForms(rows *sql.Rows) []domain.Form {
	forms := []domain.Form{}
	for rows.Next() {
		var f domain.Form
		var returnDate sql.NullTime
		var statusStr string
		if err := rows.Scan(&f.ID, &f.Type, &f.IssueDate, &returnDate, &statusStr, &f.MemberID); err != nil {
			logger.DatabaseResult("SELECT", int64(len(forms)), err, "table", "form")
			return []domain.Form{}
		}
		if returnDate.Valid {
			t := returnDate.Time
			f.ReturnDate = &t
		}
		f.Status = domain.ParseFormStatus(statusStr)
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(forms)), err, "table", "form")
		return []domain.Form{}
	}
	return forms
}

// nullableDate maps an absent optional date to SQL NULL.
func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func formStatusOrDefault(s domain.FormStatus) string {
	if s == "" {
		s = domain.FormStatusPending
	}
	return string(s)
}
