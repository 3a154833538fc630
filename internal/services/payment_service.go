package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/skip2/go-qrcode"

	"github.com/homefix/backend/internal/config"
	"github.com/homefix/backend/internal/models"
)

// PaymentSession is what a customer scans to pay for a booking
// @Description Payment stub session
type PaymentSession struct {
	BookingID  string    `json:"booking_id"`
	PaymentRef string    `json:"payment_ref" example:"PAY-1767225600000-A1B2C3"`
	Amount     int64     `json:"amount" example:"599"`
	Currency   string    `json:"currency" example:"INR"`
	PaymentURL string    `json:"payment_url"`
	QRCode     string    `json:"qr_code"` // base64 PNG
	ExpiresAt  time.Time `json:"expires_at"`
}

type storedPayment struct {
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// PaymentService is a gateway stub: it hands out references and QR codes and
// confirms them against the ledger. Nothing leaves the process.
type PaymentService struct {
	ledger    *BookingLedger
	redis     *redis.Client
	ttl       time.Duration
	refPrefix string
	deepLink  string
	qrSize    int
	now       func() time.Time
	newRef    func() (string, error)
}

func NewPaymentService(ledger *BookingLedger, redisClient *redis.Client, cfg *config.BookingConfig) *PaymentService {
	s := &PaymentService{
		ledger:    ledger,
		redis:     redisClient,
		ttl:       cfg.PaymentSessionTTL,
		refPrefix: cfg.PaymentRefPrefix,
		deepLink:  cfg.PaymentDeepLink,
		qrSize:    cfg.QRImageSize,
		now:       time.Now,
	}
	s.newRef = s.generateRef
	return s
}

// StartPayment opens a payment session for an unpaid booking
func (s *PaymentService) StartPayment(ctx context.Context, bookingID string) (*PaymentSession, error) {
	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: booking %s is already paid", ErrConflict, booking.ID)
	}

	ref, err := s.newRef()
	if err != nil {
		return nil, fmt.Errorf("%w: generate payment reference: %v", ErrInternal, err)
	}
	paymentURL := s.paymentURL(booking, ref)

	if s.redis != nil {
		data, err := json.Marshal(storedPayment{BookingID: booking.ID, Amount: booking.Amount, Currency: booking.Currency})
		if err != nil {
			return nil, fmt.Errorf("%w: encode payment session: %v", ErrInternal, err)
		}
		if err := s.redis.Set(ctx, PaymentKey(ref), string(data), s.ttl).Err(); err != nil {
			log.Printf("[PAYMENT] Failed to store session %s: %v", ref, err)
			return nil, fmt.Errorf("%w: store payment session: %v", ErrInternal, err)
		}
	}

	qrImage, err := s.qrImage(paymentURL)
	if err != nil {
		return nil, fmt.Errorf("%w: render qr code: %v", ErrInternal, err)
	}

	log.Printf("[PAYMENT] Session %s opened for booking %s", ref, booking.ID)
	return &PaymentSession{
		BookingID:  booking.ID,
		PaymentRef: ref,
		Amount:     booking.Amount,
		Currency:   booking.Currency,
		PaymentURL: paymentURL,
		QRCode:     qrImage,
		ExpiresAt:  s.now().Add(s.ttl),
	}, nil
}

// Verify confirms a payment reference for a booking. Repeating it with the
// reference the booking was paid with confirms the booking again without a session.
func (s *PaymentService) Verify(ctx context.Context, bookingID, paymentRef string) (*models.Booking, error) {
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return nil, invalidInput("payment reference is required")
	}

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	repeat := booking.PaymentStatus == models.PaymentStatusPaid
	if repeat && booking.PaymentRef != paymentRef {
		return nil, fmt.Errorf("%w: booking %s was paid with another reference", ErrConflict, booking.ID)
	}

	checkSession := s.redis != nil && !repeat
	if checkSession {
		data, err := s.redis.Get(ctx, PaymentKey(paymentRef)).Bytes()
		if err == redis.Nil {
			return nil, invalidInput("invalid or expired payment reference")
		}
		if err != nil {
			return nil, fmt.Errorf("%w: load payment session: %v", ErrInternal, err)
		}

		var session storedPayment
		if err := json.Unmarshal(data, &session); err != nil {
			return nil, fmt.Errorf("%w: decode payment session: %v", ErrInternal, err)
		}
		if session.BookingID != booking.ID {
			return nil, invalidInput("payment reference does not belong to booking %s", booking.ID)
		}
	}

	paid, err := s.ledger.VerifyPayment(ctx, booking.ID, paymentRef)
	if err != nil {
		return nil, err
	}

	if checkSession {
		if err := s.redis.Del(ctx, PaymentKey(paymentRef)).Err(); err != nil {
			log.Printf("[PAYMENT] Failed to clear session %s: %v", paymentRef, err)
		}
	}

	log.Printf("[PAYMENT] Booking %s paid with %s", paid.ID, paymentRef)
	return paid, nil
}

// PaymentKey is the Redis key holding an open payment session
func PaymentKey(ref string) string {
	return fmt.Sprintf("payment:%s", ref)
}

func (s *PaymentService) paymentURL(b *models.Booking, ref string) string {
	q := url.Values{}
	q.Set("ref", ref)
	q.Set("booking", b.ID)
	q.Set("amount", strconv.FormatInt(b.Amount, 10))
	q.Set("currency", b.Currency)
	return s.deepLink + "?" + q.Encode()
}

func (s *PaymentService) qrImage(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(s.qrSize)); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *PaymentService) generateRef() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s", s.refPrefix, s.now().UnixMilli(), strings.ToUpper(hex.EncodeToString(b))), nil
}
