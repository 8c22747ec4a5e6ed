package request

import (
	"station-booking/internal/usecase/commands"
)

// CreateReservationRequest is the booking form. One reservation is created per station.
type CreateReservationRequest struct {
	Type     string `json:"type" binding:"required" example:"pc"`
	Stations []int  `json:"stations" binding:"required,min=1" example:"3,4"`
	Date     string `json:"date" binding:"required" example:"2025-06-01"`
	Time     string `json:"time" binding:"required" example:"18:00"`
	Duration int    `json:"duration" binding:"required" example:"2"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func (r CreateReservationRequest) ToInput(ownerID string) commands.SubmitInput {
	return commands.SubmitInput{
		Type:     r.Type,
		Stations: r.Stations,
		Date:     r.Date,
		Time:     r.Time,
		Duration: r.Duration,
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		OwnerID:  ownerID,
	}
}

type AvailabilityQuery struct {
	Date     string `form:"date" binding:"required"`
	Type     string `form:"type" binding:"required"`
	Time     string `form:"time" binding:"required"`
	Duration int    `form:"duration" binding:"required"`
}

type ListReservationsQuery struct {
	Date *string `form:"date"`
}
