package response

import (
	"time"

	"clothing-shop/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	UsrID         string    `json:"usr_id"`
	UsrName       string    `json:"usr_name"`
	UsrEmail      string    `json:"usr_email"`
	UsrType       string    `json:"usr_type"`
	UsrActive     bool      `json:"usr_active"`
	UsrCreatedat  time.Time `json:"usr_createdat"`
	UsrLastupdate time.Time `json:"usr_lastupdate"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UsrID:         user.ID.String(),
		UsrName:       user.Name,
		UsrEmail:      user.Email,
		UsrType:       string(user.Role),
		UsrActive:     user.IsActive,
		UsrCreatedat:  user.CreatedAt,
		UsrLastupdate: user.UpdatedAt,
	}
}
