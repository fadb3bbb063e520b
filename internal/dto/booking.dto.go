package dto

import "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"

type DaysResponse struct {
	Success bool                      `json:"success"`
	Days    []booking.DayAvailability `json:"days"`
}

type TimeslotDTO struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type TimeslotsResponse struct {
	Success   bool          `json:"success"`
	Timeslots []TimeslotDTO `json:"timeslots"`
}

type BookResponse struct {
	Success   bool   `json:"success"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func NewTimeslotsResponse(slots []booking.Timeslot) TimeslotsResponse {
	out := make([]TimeslotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeslotDTO{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return TimeslotsResponse{Success: true, Timeslots: out}
}
