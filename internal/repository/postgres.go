package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/homefix/backend/internal/models"
)

const uniqueViolation = "23505"

const bookingColumns = `id, customer_name, customer_email, customer_phone, service_id, technician_id,
	scheduled_at, notes, amount, currency, status, payment_status, payment_ref, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// PostgresBookingRepository stores bookings in the bookings table.
type PostgresBookingRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresBookingRepository(db *sql.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db, now: time.Now}
}

func (r *PostgresBookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		b.ID, b.Customer.Name, b.Customer.Email, b.Customer.Phone, b.ServiceID, b.TechnicianID,
		b.ScheduledAt, b.Notes, b.Amount, b.Currency, string(b.Status), string(b.PaymentStatus),
		b.PaymentRef, b.CreatedAt, b.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return scanBookingRow(row)
}

func (r *PostgresBookingRepository) ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE lower(customer_email) = lower($1)
		ORDER BY created_at DESC, seq DESC`, email)
}

func (r *PostgresBookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, seq DESC`)
}

func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE bookings SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING `+bookingColumns,
		string(status), r.now(), id)
	return scanBookingRow(row)
}

// MarkPaid refuses a booking already paid under a different reference. The
// guard sits in the WHERE clause so concurrent verifications cannot both win.
func (r *PostgresBookingRepository) MarkPaid(ctx context.Context, id, paymentRef string) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE bookings SET status = $1, payment_status = $2, payment_ref = $3, updated_at = $4
		WHERE id = $5 AND (payment_status <> $2 OR payment_ref = $3)
		RETURNING `+bookingColumns,
		string(models.BookingStatusConfirmed), string(models.PaymentStatusPaid), paymentRef, r.now(), id)
	b, err := scanBookingRow(row)
	if !errors.Is(err, ErrNotFound) {
		return b, err
	}

	// no row updated: either the booking is missing or the guard rejected it
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}
	if exists {
		return nil, ErrConflict
	}
	return nil, ErrNotFound
}

func (r *PostgresBookingRepository) query(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBookingRow(row *sql.Row) (*models.Booking, error) {
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	var status, paymentStatus string
	err := row.Scan(&b.ID, &b.Customer.Name, &b.Customer.Email, &b.Customer.Phone, &b.ServiceID,
		&b.TechnicianID, &b.ScheduledAt, &b.Notes, &b.Amount, &b.Currency, &status, &paymentStatus,
		&b.PaymentRef, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Status = models.BookingStatus(status)
	b.PaymentStatus = models.PaymentStatus(paymentStatus)
	return &b, nil
}

// PostgresCatalogRepository stores services and technicians.
type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, icon, price, category, border_color, subservices, created_at
		FROM services ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Price, &s.Category,
			&s.BorderColor, &s.Subservices, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PostgresCatalogRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, icon, price, category, border_color, subservices, created_at
		FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Price, &s.Category, &s.BorderColor, &s.Subservices, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresCatalogRepository) ListTechnicians(ctx context.Context, specialization string) ([]models.Technician, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, specialization, phone, experience, available, created_at
		FROM technicians
		WHERE $1 = '' OR specialization = $1
		ORDER BY name`, specialization)
	if err != nil {
		return nil, fmt.Errorf("query technicians: %w", err)
	}
	defer rows.Close()

	technicians := make([]models.Technician, 0)
	for rows.Next() {
		var t models.Technician
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialization, &t.Phone, &t.Experience, &t.Available, &t.CreatedAt); err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}

func (r *PostgresCatalogRepository) GetTechnician(ctx context.Context, id string) (*models.Technician, error) {
	var t models.Technician
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, specialization, phone, experience, available, created_at
		FROM technicians WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Specialization, &t.Phone, &t.Experience, &t.Available, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresCatalogRepository) ReplaceAll(ctx context.Context, services []models.Service, technicians []models.Technician) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM technicians`); err != nil {
		return fmt.Errorf("clear technicians: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM services`); err != nil {
		return fmt.Errorf("clear services: %w", err)
	}

	for _, s := range services {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO services (id, title, description, icon, price, category, border_color, subservices, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.ID, s.Title, s.Description, s.Icon, s.Price, s.Category, s.BorderColor, s.Subservices, s.CreatedAt); err != nil {
			return fmt.Errorf("insert service %s: %w", s.Category, err)
		}
	}

	for _, t := range technicians {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO technicians (id, name, specialization, phone, experience, available, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, t.Name, t.Specialization, t.Phone, t.Experience, t.Available, t.CreatedAt); err != nil {
			return fmt.Errorf("insert technician %s: %w", t.Name, err)
		}
	}

	return tx.Commit()
}

// PostgresUserRepository is the identity store backed by the users table.
type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, phone, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.Phone, u.Role, u.PasswordHash, u.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, phone, role, password_hash, created_at
		FROM users WHERE email = lower($1)`, email)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, phone, role, password_hash, created_at
		FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// PostgresReviewRepository relies on a unique index on booking_id.
type PostgresReviewRepository struct {
	db *sql.DB
}

func NewPostgresReviewRepository(db *sql.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Create(ctx context.Context, rv *models.Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (id, booking_id, technician_id, service_id, author, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rv.ID, rv.BookingID, rv.TechnicianID, rv.ServiceID, rv.Author, rv.Rating, rv.Comment, rv.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PostgresReviewRepository) ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, booking_id, technician_id, service_id, author, rating, comment, created_at
		FROM reviews WHERE technician_id = $1
		ORDER BY created_at DESC`, technicianID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.TechnicianID, &rv.ServiceID, &rv.Author,
			&rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
