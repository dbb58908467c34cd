package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a non-positive transaction amount.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// ErrInvalidType indicates an unrecognized transaction type.
var ErrInvalidType = errors.New("unrecognized transaction type")

// ErrConflict indicates a lost update detected by the locking layer.
var ErrConflict = errors.New("concurrent update conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
