package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrCourseNotFound  = errors.New("course was not found")
	ErrPaymentNotFound = errors.New("payment was not found")
)
