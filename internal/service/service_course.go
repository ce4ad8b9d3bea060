package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/models"
)

// courseService is the concrete implementation of CourseService.
//
// The catalog is held in memory and guarded by a mutex; payment intents
// for purchases are delegated to the PaymentCreator, which in production
// is the signed HTTP adapter to the payment service.
type courseService struct {
	mu      sync.RWMutex
	courses map[string]models.Course

	payments PaymentCreator
	logger   *logger.Logger
}

// NewCourseService constructs a CourseService that creates payment intents
// through the given PaymentCreator.
func NewCourseService(payments PaymentCreator, logger *logger.Logger) CourseService {
	return &courseService{
		courses:  make(map[string]models.Course),
		payments: payments,
		logger:   logger,
	}
}

// ListCourses returns every course in the catalog.
func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	courses := make([]models.Course, 0, len(c.courses))
	for _, course := range c.courses {
		courses = append(courses, course)
	}

	return courses, nil
}

// GetCourse returns the course with the given ID, or ErrCourseNotFound.
func (c *courseService) GetCourse(ctx context.Context, courseID string) (models.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	course, ok := c.courses[courseID]
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}

	return course, nil
}

// CreateCourse adds a new catalog entry. The course ID and creation time
// are server-assigned; the caller's OwnerID is kept as-is, because it was
// resolved from the authenticated identity by the handler.
func (c *courseService) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if course.Title == "" || course.OwnerID == 0 {
		log.Error().Str("title", course.Title).Int64("owner_id", course.OwnerID).Msg("invalid course data provided")
		return models.Course{}, ErrInvalidDataProvided
	}

	course.CourseID = uuid.NewString()
	course.CreatedAt = time.Now()

	c.mu.Lock()
	c.courses[course.CourseID] = course
	c.mu.Unlock()

	log.Info().Str("course_id", course.CourseID).Int64("owner_id", course.OwnerID).Msg("course created")

	return course, nil
}

// UpdateCourse replaces the mutable fields (Title, PriceCents) of an
// existing course. Ownership checks happen before the service is reached;
// OwnerID and CreatedAt are immutable here.
func (c *courseService) UpdateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if course.CourseID == "" || course.Title == "" {
		log.Error().Str("course_id", course.CourseID).Msg("invalid course data provided")
		return models.Course{}, ErrInvalidDataProvided
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.courses[course.CourseID]
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}

	existing.Title = course.Title
	existing.PriceCents = course.PriceCents
	c.courses[course.CourseID] = existing

	return existing, nil
}

// PurchaseCourse creates a payment intent for the given user and course.
//
// The idempotency key is derived from (user, course), so retrying a
// purchase never charges twice.
func (c *courseService) PurchaseCourse(ctx context.Context, userID int64, courseID string) (models.Payment, error) {
	log := logger.FromContext(ctx)

	course, err := c.GetCourse(ctx, courseID)
	if err != nil {
		return models.Payment{}, err
	}

	payment, err := c.payments.CreatePayment(ctx, models.PaymentRequest{
		UserID:         userID,
		CourseID:       course.CourseID,
		AmountCents:    course.PriceCents,
		IdempotencyKey: fmt.Sprintf("purchase:%d:%s", userID, course.CourseID),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("course_id", courseID).Msg("payment creation failed")
		return models.Payment{}, fmt.Errorf("payment creation failed: %w", err)
	}

	log.Info().
		Int64("user_id", userID).
		Str("course_id", courseID).
		Str("payment_id", payment.PaymentID).
		Msg("course purchase initiated")

	return payment, nil
}
