package converter

import (
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:            user.ID,
		FirebaseUID:   user.FirebaseUID,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		AuthProvider:  user.AuthProvider,
		FullName:      user.FullName,
		GivenName:     user.GivenName,
		FamilyName:    user.FamilyName,
		PhotoURL:      user.PhotoURL,
		Phone:         user.Phone,
		Role:          string(user.Role),
		IsActive:      user.IsActive,
		IsOnboarded:   user.IsOnboarded,
		LastLoginAt:   user.LastLoginAt,
		Patient:       user.Patient,
		Admin:         user.Admin,
		PharmacyStaff: user.PharmacyStaff,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *UserToResponse(&user)
	}
	return responses
}
