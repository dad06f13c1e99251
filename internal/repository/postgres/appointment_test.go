package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/repository/postgres"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAppointmentRepository(db)
	ctx := context.Background()

	t.Run("TimeColumnTrimmedToMinutes", func(t *testing.T) {
		d := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"appointment_id", "appointment_date", "appointment_time", "location", "holiday_flag"}).
			AddRow(1, d, "19:30:00", "Bern Gym", false).
			AddRow(2, d, "18:00", "Thun Hall", true)

		mock.ExpectQuery("SELECT (.+) FROM appointment ORDER BY appointment_date DESC").
			WillReturnRows(rows)

		appointments := repo.FindAll(ctx)
		assert.Len(t, appointments, 2)
		assert.Equal(t, "19:30", appointments[0].Time)
		assert.Equal(t, "18:00", appointments[1].Time)
		assert.True(t, appointments[1].Holiday)
	})

	t.Run("QueryErrorReturnsEmptySlice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM appointment").
			WillReturnError(errors.New("connection refused"))

		appointments := repo.FindAll(ctx)
		assert.NotNil(t, appointments)
		assert.Empty(t, appointments)
	})
}

func TestAppointmentRepository_FindUpcoming(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAppointmentRepository(db)
	ctx := context.Background()

	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"appointment_id", "appointment_date", "appointment_time", "location", "holiday_flag"}).
		AddRow(4, d, "19:30:00", "Bern Gym", false)

	mock.ExpectQuery("SELECT (.+) FROM appointment WHERE appointment_date >= CURRENT_DATE").
		WillReturnRows(rows)

	appointments := repo.FindUpcoming(ctx)
	assert.Len(t, appointments, 1)
	assert.Equal(t, int32(4), appointments[0].ID)
}

func TestAppointmentRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAppointmentRepository(db)
	ctx := context.Background()

	a := &domain.Appointment{
		Date:     time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:     "19:30",
		Location: "Bern Gym",
	}

	mock.ExpectQuery("INSERT INTO appointment").
		WithArgs(a.Date, "19:30", "Bern Gym", false).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_id"}).AddRow(9))

	ok := repo.Save(ctx, a)
	assert.True(t, ok)
	assert.Equal(t, int32(9), a.ID)
}

func TestAppointmentRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAppointmentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM appointment WHERE appointment_id = \\$1").
		WithArgs(int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.True(t, repo.Delete(ctx, 9))
}
