package response

import (
	"station-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CellResponse struct {
	Station       int        `json:"station"`
	Reserved      bool       `json:"reserved"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
}

type HourRowResponse struct {
	Hour  int            `json:"hour"`
	Label string         `json:"label"`
	Cells []CellResponse `json:"cells"`
}

type KindCalendarResponse struct {
	Type     string            `json:"type"`
	Stations []int             `json:"stations"`
	Rows     []HourRowResponse `json:"rows"`
}

type CalendarResponse struct {
	Date        string                 `json:"date"`
	Hours       []int                  `json:"hours"`
	Kinds       []KindCalendarResponse `json:"kinds"`
	Warnings    []string               `json:"warnings"`
	Unavailable bool                   `json:"unavailable"`
}

type AvailabilityResponse struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Reserved []int  `json:"reserved"`
	Free     []int  `json:"free"`
}

func FromDayCalendarView(v *queries.DayCalendarView) *CalendarResponse {
	resp := &CalendarResponse{
		Date:        v.Date,
		Hours:       v.Hours,
		Kinds:       make([]KindCalendarResponse, 0, len(v.Kinds)),
		Warnings:    v.Warnings,
		Unavailable: v.Unavailable,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}

	for _, k := range v.Kinds {
		kr := KindCalendarResponse{
			Type:     k.Type,
			Stations: k.Stations,
			Rows:     make([]HourRowResponse, 0, len(k.Rows)),
		}
		for _, row := range k.Rows {
			rr := HourRowResponse{
				Hour:  row.Hour,
				Label: row.Label,
				Cells: make([]CellResponse, 0, len(row.Cells)),
			}
			for _, cell := range row.Cells {
				rr.Cells = append(rr.Cells, CellResponse(cell))
			}
			kr.Rows = append(kr.Rows, rr)
		}
		resp.Kinds = append(resp.Kinds, kr)
	}
	return resp
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:     v.Date,
		Type:     v.Type,
		Time:     v.Time,
		Duration: v.Duration,
		Reserved: v.Reserved,
		Free:     v.Free,
	}
}
