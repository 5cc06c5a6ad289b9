package httpapi

import (
	"time"

	"github.com/avolkov/dogshelter/internal/server/models"
)

// Wire shapes. The user response never carries the password hash.

type tokenResponse struct {
	Scheme      string `json:"scheme"`
	Credentials string `json:"credentials"`
}

type dogResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Picture    string    `json:"picture"`
	IsAdopted  bool      `json:"is_adopted"`
	CreateDate time.Time `json:"create_date"`
}

type userResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LastName   string    `json:"last_name"`
	Disabled   bool      `json:"disabled"`
	CreateDate time.Time `json:"create_date"`
}

type dogPayload struct {
	IsAdopted bool `json:"is_adopted"`
}

type signupPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// userPayload mirrors the original update schema: omitted disabled keeps the
// historical default of true.
type userPayload struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Disabled *bool  `json:"disabled"`
}

type statusResponse struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
}

func toDogResponse(d *models.Dog) dogResponse {
	return dogResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Name:       d.Name,
		Picture:    d.Picture,
		IsAdopted:  d.IsAdopted,
		CreateDate: d.CreateDate,
	}
}

func toDogResponses(ds []*models.Dog) []dogResponse {
	result := make([]dogResponse, 0, len(ds))
	for _, d := range ds {
		result = append(result, toDogResponse(d))
	}
	return result
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		LastName:   u.LastName,
		Disabled:   u.Disabled,
		CreateDate: u.CreateDate,
	}
}

func toUserResponses(us []*models.User) []userResponse {
	result := make([]userResponse, 0, len(us))
	for _, u := range us {
		result = append(result, toUserResponse(u))
	}
	return result
}
