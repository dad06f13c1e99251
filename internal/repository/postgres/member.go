package postgres

import (
	"context"
	"database/sql"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindAll(ctx context.Context) []domain.Member {
	query := `SELECT member_id, first_name, last_name, email, role FROM member ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "member")
		return []domain.Member{}
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (r *memberRepository) FindByID(ctx context.Context, id int32) *domain.Member {
	query := `SELECT member_id, first_name, last_name, email, role FROM member WHERE member_id = $1`
	m, roleStr := domain.Member{}, ""
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &roleStr)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.DatabaseResult("SELECT", 0, err, "table", "member", "id", id)
		}
		return nil
	}
	m.Role = domain.ParseRole(roleStr)
	return &m
}

func (r *memberRepository) Search(ctx context.Context, term string) []domain.Member {
	query := `SELECT member_id, first_name, last_name, email, role FROM member
	          WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
	          ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "table", "member", "term", term)
		return []domain.Member{}
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (r *memberRepository) Save(ctx context.Context, m *domain.Member) bool {
	query := `INSERT INTO member (first_name, last_name, email, role) VALUES ($1, $2, $3, $4) RETURNING member_id`
	err := r.db.QueryRowContext(ctx, query, m.FirstName, m.LastName, m.Email, string(m.Role)).Scan(&m.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "member")
		return false
	}
	return true
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) bool {
	query := `UPDATE member SET first_name = $1, last_name = $2, email = $3, role = $4 WHERE member_id = $5`
	res, err := r.db.ExecContext(ctx, query, m.FirstName, m.LastName, m.Email, string(m.Role), m.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "table", "member", "id", m.ID)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func (r *memberRepository) Delete(ctx context.Context, id int32) bool {
	res, err := r.db.ExecContext(ctx, `DELETE FROM member WHERE member_id = $1`, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "table", "member", "id", id)
		return false
	}
	affected, _ := res.RowsAffected()
	return affected > 0
}

func collectMembers(rows *sql.Rows) []domain.Member {
	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		var roleStr string
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &roleStr); err != nil {
			logger.DatabaseResult("SELECT", int64(len(members)), err, "table", "member")
			return []domain.Member{}
		}
		m.Role = domain.ParseRole(roleStr)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(members)), err, "table", "member")
		return []domain.Member{}
	}
	return members
}
