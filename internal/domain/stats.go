package domain

import "time"

// GroupCount is one bucket of a grouped count.
type GroupCount struct {
	Key   string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

type OverviewCounts struct {
	TotalBookings     int64   `json:"totalBookings"`
	TotalContacts     int64   `json:"totalContacts"`
	TotalTestimonials int64   `json:"totalTestimonials"`
	TotalUsers        int64   `json:"totalUsers"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	ActiveUsers       int64   `json:"activeUsers"`
	RecentBookings    int64   `json:"recentBookings"`
	AverageRating     float64 `json:"averageRating"`
}

type StatsOverview struct {
	Overview          OverviewCounts `json:"overview"`
	BookingsByService []GroupCount   `json:"bookingsByService"`
	BookingsByStatus  []GroupCount   `json:"bookingsByStatus"`
}

type StatsPeriod string

const (
	PeriodWeek  StatsPeriod = "week"
	PeriodMonth StatsPeriod = "month"
	PeriodYear  StatsPeriod = "year"
)

// ParseStatsPeriod falls back to month for unknown values.
func ParseStatsPeriod(s string) StatsPeriod {
	switch StatsPeriod(s) {
	case PeriodWeek, PeriodYear:
		return StatsPeriod(s)
	}
	return PeriodMonth
}

// Window is the trailing span the period covers.
func (p StatsPeriod) Window() time.Duration {
	switch p {
	case PeriodWeek:
		return 7 * 24 * time.Hour
	case PeriodYear:
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

type BookingStats struct {
	Period         StatsPeriod      `json:"period"`
	Since          time.Time        `json:"since"`
	BookingsByDate map[string]int64 `json:"bookingsByDate"`
	ServiceStats   []GroupCount     `json:"serviceStats"`
}
