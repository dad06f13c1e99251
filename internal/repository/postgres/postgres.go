package postgres

import (
	"database/sql"

	"kud-club-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.AppointmentRepository
	repository.FormRepository
	repository.ParticipationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		MemberRepository:        NewMemberRepository(db),
		AppointmentRepository:   NewAppointmentRepository(db),
		FormRepository:          NewFormRepository(db),
		ParticipationRepository: NewParticipationRepository(db),
	}
}
