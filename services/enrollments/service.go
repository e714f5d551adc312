// Package enrollments enrolls students in courses, charging for paid ones.
//
// An enrollment first claims the (user, course) pair with a pending row
// guarded by a unique index, so a double submit cannot reach the payment
// gateway twice. The claim becomes active once the charge succeeds.
package enrollments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barmaja/apperr"
	"barmaja/auth"
	"barmaja/database"
	"barmaja/locks"
	"barmaja/logging"
	"barmaja/models"
	"barmaja/oops"
	"barmaja/payment"
	"barmaja/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const PaymentMethodFree = "free"

var (
	ErrAlreadyEnrolled = apperr.Conflict("User already enrolled in this course!", nil)
	ErrInProgress      = apperr.Conflict("An enrollment for this course is already in progress.", nil)
	ErrLoginRequired   = &apperr.Error{Kind: apperr.KindUnauthenticated, Message: "Please login to enroll in this course."}
	ErrCourseNotFound  = apperr.NotFound("Course")
)

type Options struct {
	Currency string
	// Locker, when set, serializes enroll attempts per (user, course).
	Locker  locks.Locker
	LockTTL time.Duration
	// Notifier, when set, receives a confirmation email per enrollment.
	Notifier *utils.Notifier
}

type Service struct {
	db      *gorm.DB
	gateway payment.Gateway
	opts    Options
}

func NewService(db *gorm.DB, gateway payment.Gateway, opts Options) *Service {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 30 * time.Second
	}
	return &Service{db: db, gateway: gateway, opts: opts}
}

// Enroll charges the actor for the course and records the enrollment.
// An existing pending or active enrollment fails with ErrAlreadyEnrolled
// before any charge is attempted.
func (s *Service) Enroll(ctx context.Context, actor auth.Actor, courseID uint, paymentMethod string) (*models.Enrollment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrLoginRequired
	}

	var course models.Course
	err := s.db.WithContext(ctx).Where("is_published = ?", true).First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	enrolled, err := s.hasClaim(ctx, actor.UserID, course.ID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, ErrAlreadyEnrolled
	}
	if course.PriceCents > 0 && paymentMethod == "" {
		return nil, apperr.FieldError("payment_method", "Payment method is required")
	}

	if s.opts.Locker != nil {
		release, err := s.opts.Locker.Acquire(ctx, fmt.Sprintf("enroll:%d:%d", actor.UserID, course.ID), s.opts.LockTTL)
		if errors.Is(err, locks.ErrLocked) {
			return nil, ErrInProgress
		}
		if err != nil {
			return nil, err
		}
		defer release()
	}

	claim, err := s.claim(ctx, actor.UserID, course.ID)
	if err != nil {
		return nil, err
	}
	log := logging.With().Uint("user_id", actor.UserID).Uint("course_id", course.ID).Uint("enrollment_id", claim.ID).Logger()

	var result *payment.ChargeResult
	if course.PriceCents > 0 {
		idempotencyKey := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("enrollment:%d", claim.ID))).String()
		result, err = s.gateway.Charge(ctx, payment.ChargeRequest{
			AmountCents:    course.PriceCents,
			Currency:       s.opts.Currency,
			PaymentMethod:  paymentMethod,
			CustomerRef:    fmt.Sprint(actor.UserID),
			Description:    "Enrollment: " + course.TitleEn,
			IdempotencyKey: idempotencyKey,
		})
		if err != nil {
			s.releaseClaim(claim)
			var declined *payment.DeclinedError
			if errors.As(err, &declined) {
				log.Info().Str("reason", declined.Reason).Msg("payment declined")
				return nil, apperr.Payment(declined.Reason, err)
			}
			// The gateway may still have accepted the charge; the key is
			// what reconciliation searches for.
			log.Error().Err(err).Str("idempotency_key", idempotencyKey).Int64("amount", course.PriceCents).
				Msg("payment gateway failure, charge outcome unknown")
			return nil, apperr.Payment("Payment failed!", oops.New(err, "charge with idempotency key %s", idempotencyKey))
		}
	}

	if err := s.activate(ctx, claim, course, paymentMethod, result); err != nil {
		log.Error().Err(err).Msg("failed to activate enrollment after charge")
		s.compensate(claim, result)
		return nil, err
	}
	log.Info().Str("payment_method", claim.PaymentMethod).Int64("amount", claim.AmountPaidCents).Msg("enrollment completed")

	if s.opts.Notifier != nil {
		s.notify(actor.UserID, course, *claim)
	}
	return claim, nil
}

func (s *Service) hasClaim(ctx context.Context, userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status IN ?", userID, courseID,
			[]string{models.EnrollmentPending, models.EnrollmentActive}).
		Count(&count).Error
	return count > 0, err
}

// claim inserts the pending row. A refunded attempt for the same pair is
// replaced.
func (s *Service) claim(ctx context.Context, userID, courseID uint) (*models.Enrollment, error) {
	claim := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   models.EnrollmentPending,
		Currency: s.opts.Currency,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, models.EnrollmentRefunded).
			Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Create(claim).Error
	})
	if database.IsUniqueViolation(err) {
		return nil, ErrAlreadyEnrolled
	}
	if err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *Service) activate(ctx context.Context, claim *models.Enrollment, course models.Course, paymentMethod string, result *payment.ChargeResult) error {
	now := time.Now()
	claim.Status = models.EnrollmentActive
	claim.EnrolledAt = &now
	claim.PaymentMethod = PaymentMethodFree
	claim.AmountPaidCents = 0
	if result != nil {
		claim.PaymentMethod = paymentMethod
		claim.AmountPaidCents = course.PriceCents
		claim.TransactionID = result.TransactionID
		details, err := json.Marshal(map[string]interface{}{
			"gateway_status": result.Status,
			"gateway":        result.Raw,
		})
		if err != nil {
			return err
		}
		claim.PaymentDetails = datatypes.JSON(details)
	}

	res := s.db.WithContext(ctx).Model(claim).Where("status = ?", models.EnrollmentPending).Select(
		"status", "enrolled_at", "payment_method", "amount_paid_cents", "transaction_id", "payment_details",
	).Updates(claim)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return oops.New(nil, "pending enrollment %d disappeared before activation", claim.ID)
	}
	return nil
}

// releaseClaim drops a pending claim whose charge failed. It runs detached
// from the request so a cancelled client cannot leave the claim behind.
func (s *Service) releaseClaim(claim *models.Enrollment) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.db.WithContext(ctx).Where("status = ?", models.EnrollmentPending).Delete(&models.Enrollment{}, claim.ID).Error; err != nil {
		logging.Error().Err(err).Uint("enrollment_id", claim.ID).Msg("failed to release enrollment claim, sweeper will remove it")
	}
}

// compensate refunds a charge whose enrollment could not be activated.
func (s *Service) compensate(claim *models.Enrollment, result *payment.ChargeResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if result == nil {
		s.releaseClaim(claim)
		return
	}
	if err := s.gateway.Refund(ctx, result.TransactionID); err != nil {
		logging.Error().Err(err).Str("transaction_id", result.TransactionID).Uint("enrollment_id", claim.ID).
			Msg("REFUND FAILED for charged enrollment, manual action required")
		s.releaseClaim(claim)
		return
	}

	err := s.db.WithContext(ctx).Model(&models.Enrollment{}).Where("id = ?", claim.ID).
		Updates(map[string]interface{}{"status": models.EnrollmentRefunded, "transaction_id": result.TransactionID}).Error
	if err != nil {
		s.releaseClaim(claim)
	}
}

func (s *Service) notify(userID uint, course models.Course, enrollment models.Enrollment) {
	utils.Go("enrollment confirmation", func(ctx context.Context) error {
		var user models.User
		if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
			return err
		}
		return s.opts.Notifier.SendEnrollmentEmail(ctx, &user, &course, &enrollment)
	})
}

// IsEnrolled reports whether the user holds an active enrollment.
func (s *Service) IsEnrolled(ctx context.Context, userID, courseID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, models.EnrollmentActive).
		Count(&count).Error
	return count > 0, err
}

// ListForUser returns the user's active enrollments, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.WithContext(ctx).Preload("Course").
		Where("user_id = ? AND status = ?", userID, models.EnrollmentActive).
		Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

// SweepStalePending deletes pending claims older than olderThan, left by
// requests that died between claim and activation.
func (s *Service) SweepStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.EnrollmentPending, time.Now().Add(-olderThan)).
		Delete(&models.Enrollment{})
	return res.RowsAffected, res.Error
}
