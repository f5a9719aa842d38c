package models

import (
	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

const (
	ScopeGround = "ground"
	ScopeVenue  = "venue"
)

// OperatingWindowResponse окно работы на один день недели
type OperatingWindowResponse struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	DayName   string `json:"dayName"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Overnight bool   `json:"overnight"`
}

// OperatingHoursResponse расписание, по которому считаются слоты
type OperatingHoursResponse struct {
	GroundID int64                     `json:"groundId"`
	VenueID  int64                     `json:"venueId"`
	Scope    string                    `json:"scope"` // ground | venue
	Windows  []OperatingWindowResponse `json:"windows"`
}

// FromDomainWindows конвертирует окна в DTO
func FromDomainWindows(g *domain.Ground, windows []domain.OperatingWindow) *OperatingHoursResponse {
	resp := &OperatingHoursResponse{
		GroundID: g.ID,
		VenueID:  g.VenueID,
		Scope:    ScopeVenue,
		Windows:  make([]OperatingWindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if w.IsGroundLevel() {
			resp.Scope = ScopeGround
		}
		resp.Windows = append(resp.Windows, OperatingWindowResponse{
			DayOfWeek: int(w.DayOfWeek),
			DayName:   w.DayOfWeek.String(),
			OpenTime:  types.NewTimeStringFromMinutes(w.OpenMinute).String(),
			CloseTime: types.NewTimeStringFromMinutes(w.CloseMinute).String(),
			Overnight: w.IsOvernight(),
		})
	}

	return resp
}
