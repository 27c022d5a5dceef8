package members

import (
	"errors"

	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

// Sentinel errors for the members domain.
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrSameSectorTransfer = errors.New("member already belongs to the target sector")
	ErrBirthOrderTaken    = errors.New("birth order already used in this family")
	ErrInvalidPhoneNumber = errors.New("phone number is not a valid Indonesian mobile number")
)

func NewMemberNotFoundError() *apperrors.AppError {
	return apperrors.NewNotFoundError("member not found", ErrMemberNotFound)
}

func NewSameSectorTransferError() *apperrors.AppError {
	return apperrors.NewInvalidRequestError("member already belongs to the target sector", ErrSameSectorTransfer)
}

func NewBirthOrderTakenError() *apperrors.AppError {
	return apperrors.NewConflictError("birth order already used in this family", ErrBirthOrderTaken)
}

func NewInvalidPhoneNumberError() *apperrors.AppError {
	return apperrors.NewInvalidRequestError("phone number must match Indonesian mobile format (08xxxxxxxxxx)", ErrInvalidPhoneNumber)
}
