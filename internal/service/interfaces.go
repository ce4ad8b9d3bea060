package service

import (
	"context"

	"github.com/opencampus/platform/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID string) (models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, course models.Course) (models.Course, error)
	PurchaseCourse(ctx context.Context, userID int64, courseID string) (models.Payment, error)
}

type PaymentService interface {
	CreatePayment(ctx context.Context, request models.PaymentRequest) (models.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (models.Payment, error)
}

// PaymentCreator abstracts the outbound call the course service makes to
// create a payment intent. In production it is the signed HTTP adapter to
// the payment service.
type PaymentCreator interface {
	CreatePayment(ctx context.Context, request models.PaymentRequest) (models.Payment, error)
}
