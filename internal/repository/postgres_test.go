package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homefix/backend/internal/models"
)

var bookingColumnNames = []string{
	"id", "customer_name", "customer_email", "customer_phone", "service_id", "technician_id",
	"scheduled_at", "notes", "amount", "currency", "status", "payment_status", "payment_ref",
	"created_at", "updated_at",
}

func bookingRow(rows *sqlmock.Rows, id, status, paymentStatus, ref string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "Asha Rao", "asha@example.com", "+919800000000", "svc-electrical", "",
		"2026-03-05 10:00", "", int64(599), "INR", status, paymentStatus, ref, createdAt, createdAt)
}

func TestPostgresBookingRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresBookingRepository(db)
	ctx := context.Background()
	b := newBooking("b1", "asha@example.com", time.Now())

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO bookings").
			WithArgs(b.ID, b.Customer.Name, b.Customer.Email, b.Customer.Phone, b.ServiceID, b.TechnicianID,
				b.ScheduledAt, b.Notes, b.Amount, b.Currency, "pending", "pending", "", b.CreatedAt, b.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Insert(ctx, b))
	})

	t.Run("duplicate id", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})

		assert.ErrorIs(t, repo.Insert(ctx, b), ErrConflict)
	})

	t.Run("driver failure", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnError(errors.New("connection reset"))

		err := repo.Insert(ctx, b)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookingRepository_Queries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresBookingRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("get by id", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs("b1").
			WillReturnRows(bookingRow(sqlmock.NewRows(bookingColumnNames), "b1", "pending", "pending", "", now))

		b, err := repo.GetByID(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(599), b.Amount)
		assert.Equal(t, models.BookingStatusPending, b.Status)
		assert.Equal(t, "asha@example.com", b.Customer.Email)
	})

	t.Run("get unknown", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by customer orders newest first", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingColumnNames)
		bookingRow(rows, "b2", "pending", "pending", "", now.Add(time.Hour))
		bookingRow(rows, "b1", "completed", "paid", "PAY-1", now)
		mock.ExpectQuery("WHERE lower\\(customer_email\\) = lower\\(\\$1\\)\\s+ORDER BY created_at DESC, seq DESC").
			WithArgs("Asha@Example.com").
			WillReturnRows(rows)

		list, err := repo.ListByCustomerEmail(ctx, "Asha@Example.com")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "b2", list[0].ID)
		assert.Equal(t, models.PaymentStatusPaid, list[1].PaymentStatus)
	})

	t.Run("list all empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY created_at DESC, seq DESC").
			WillReturnRows(sqlmock.NewRows(bookingColumnNames))

		list, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookingRepository_Updates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresBookingRepository(db)
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return updated }
	ctx := context.Background()

	t.Run("update status", func(t *testing.T) {
		mock.ExpectQuery("UPDATE bookings SET status = \\$1, updated_at = \\$2").
			WithArgs("completed", updated, "b1").
			WillReturnRows(bookingRow(sqlmock.NewRows(bookingColumnNames), "b1", "completed", "pending", "", updated))

		b, err := repo.UpdateStatus(ctx, "b1", models.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCompleted, b.Status)
	})

	t.Run("update unknown", func(t *testing.T) {
		mock.ExpectQuery("UPDATE bookings SET status").
			WithArgs("completed", updated, "nope").
			WillReturnRows(sqlmock.NewRows(bookingColumnNames))

		_, err := repo.UpdateStatus(ctx, "nope", models.BookingStatusCompleted)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("mark paid", func(t *testing.T) {
		mock.ExpectQuery("UPDATE bookings SET status = \\$1, payment_status = \\$2, payment_ref = \\$3").
			WithArgs("confirmed", "paid", "PAY-1", updated, "b1").
			WillReturnRows(bookingRow(sqlmock.NewRows(bookingColumnNames), "b1", "confirmed", "paid", "PAY-1", updated))

		b, err := repo.MarkPaid(ctx, "b1", "PAY-1")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, b.PaymentStatus)
		assert.Equal(t, "PAY-1", b.PaymentRef)
	})

	t.Run("mark paid with another reference conflicts", func(t *testing.T) {
		mock.ExpectQuery("WHERE id = \\$5 AND \\(payment_status <> \\$2 OR payment_ref = \\$3\\)").
			WithArgs("confirmed", "paid", "PAY-2", updated, "b1").
			WillReturnRows(sqlmock.NewRows(bookingColumnNames))
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM bookings WHERE id = \\$1\\)").
			WithArgs("b1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.MarkPaid(ctx, "b1", "PAY-2")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("mark paid unknown", func(t *testing.T) {
		mock.ExpectQuery("UPDATE bookings SET status = \\$1, payment_status").
			WithArgs("confirmed", "paid", "PAY-1", updated, "nope").
			WillReturnRows(sqlmock.NewRows(bookingColumnNames))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.MarkPaid(ctx, "nope", "PAY-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCatalogRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresCatalogRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("replace all runs in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM technicians").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM services").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO services").
			WithArgs("svc-ac", "AC", "", "", "", "ac", "", sqlmock.AnyArg(), now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO technicians").
			WithArgs("t1", "Vikram", "ac", "", 7, true, now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.ReplaceAll(ctx,
			[]models.Service{{ID: "svc-ac", Title: "AC", Category: "ac", CreatedAt: now}},
			[]models.Technician{{ID: "t1", Name: "Vikram", Specialization: "ac", Experience: 7, Available: true, CreatedAt: now}})
		assert.NoError(t, err)
	})

	t.Run("failed insert rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM technicians").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM services").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO services").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(ctx, []models.Service{{ID: "svc-ac", Category: "ac"}}, nil)
		assert.Error(t, err)
	})

	t.Run("get service with subservices", func(t *testing.T) {
		mock.ExpectQuery("FROM services WHERE id = \\$1").
			WithArgs("svc-ac").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "icon", "price", "category", "border_color", "subservices", "created_at"}).
				AddRow("svc-ac", "AC Repair", "", "", "₹499 onwards", "ac", "#06b6d4", []byte(`[{"name":"AC Service","price":"₹499"}]`), now))

		s, err := repo.GetService(ctx, "svc-ac")
		require.NoError(t, err)
		require.Len(t, s.Subservices, 1)
		assert.Equal(t, "AC Service", s.Subservices[0].Name)
	})

	t.Run("unknown technician", func(t *testing.T) {
		mock.ExpectQuery("FROM technicians WHERE id = \\$1").
			WithArgs("t9").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTechnician(ctx, "t9")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})
	assert.ErrorIs(t, repo.Create(ctx, &models.User{ID: "u1", Email: "asha@example.com", CreatedAt: now}), ErrConflict)

	mock.ExpectQuery("FROM users WHERE email = lower\\(\\$1\\)").
		WithArgs("ASHA@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role", "password_hash", "created_at"}).
			AddRow("u1", "Asha Rao", "asha@example.com", "+91", "customer", "salt$hash", now))
	u, err := repo.GetByEmail(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs("u9").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(ctx, "u9")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresReviewRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(&pq.Error{Code: "23505"})
	assert.ErrorIs(t, repo.Create(ctx, &models.Review{ID: "r1", BookingID: "b1", Rating: 5}), ErrConflict)

	mock.ExpectQuery("FROM reviews WHERE technician_id = \\$1").
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "technician_id", "service_id", "author", "rating", "comment", "created_at"}).
			AddRow("r2", "b2", "t1", "svc-ac", "Asha Rao", 5, "", now).
			AddRow("r1", "b1", "t1", "svc-ac", "Asha Rao", 3, "slow", now.Add(-time.Hour)))
	reviews, err := repo.ListByTechnician(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 3, reviews[1].Rating)

	assert.NoError(t, mock.ExpectationsWereMet())
}
