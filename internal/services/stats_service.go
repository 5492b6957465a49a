package services

import (
	"fmt"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

type StatsService struct {
	Stats repositories.StatsRepository

	Now func() time.Time
}

func (s StatsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// UserStats summarises one traveller's activity for their dashboard.
type UserStats struct {
	TotalBookings     int `json:"total_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ScannedTickets    int `json:"scanned_tickets"`
}

func (s StatsService) UserStats(userID int64) (UserStats, error) {
	counts, err := s.Stats.BookingStatusCounts(nil, &userID)
	if err != nil {
		return UserStats{}, err
	}
	scanned, err := s.Stats.ScannedCount(userID)
	if err != nil {
		return UserStats{}, err
	}

	out := UserStats{
		ConfirmedBookings: counts[domain.BookingConfirmed],
		CancelledBookings: counts[domain.BookingCancelled],
		PendingBookings:   counts[domain.BookingPending],
		ScannedTickets:    scanned,
	}
	for _, n := range counts {
		out.TotalBookings += n
	}
	return out, nil
}

// AdminOverview is the admin dashboard headline: platform totals plus
// booking, ticket and money aggregates over all time.
type AdminOverview struct {
	TotalUsers             int     `json:"total_users"`
	ActiveDestinations     int     `json:"active_destinations"`
	ActiveAvenues          int     `json:"active_avenues"`
	SuccessfulTransactions int     `json:"successful_transactions"`
	TotalBookings          int     `json:"total_bookings"`
	ConfirmedBookings      int     `json:"confirmed_bookings"`
	CancelledBookings      int     `json:"cancelled_bookings"`
	ScannedTickets         int     `json:"scanned_tickets"`
	UnscannedTickets       int     `json:"unscanned_tickets"`
	TotalRevenue           float64 `json:"total_revenue"`
	TotalRefunds           float64 `json:"total_refunds"`
	Profit                 float64 `json:"profit"`
}

func (s StatsService) AdminOverview() (AdminOverview, error) {
	var out AdminOverview
	var err error

	if out.TotalUsers, err = s.Stats.CountUsers(); err != nil {
		return AdminOverview{}, err
	}
	if out.ActiveDestinations, err = s.Stats.CountActiveDestinations(); err != nil {
		return AdminOverview{}, err
	}
	if out.ActiveAvenues, err = s.Stats.CountActiveAvenues(); err != nil {
		return AdminOverview{}, err
	}
	if out.SuccessfulTransactions, err = s.Stats.CountSuccessfulTransactions(); err != nil {
		return AdminOverview{}, err
	}

	bookings, err := s.Stats.BookingStatusCounts(nil, nil)
	if err != nil {
		return AdminOverview{}, err
	}
	out.ConfirmedBookings = bookings[domain.BookingConfirmed]
	out.CancelledBookings = bookings[domain.BookingCancelled]
	for _, n := range bookings {
		out.TotalBookings += n
	}

	tickets, err := s.Stats.TicketCounts(nil)
	if err != nil {
		return AdminOverview{}, err
	}
	out.ScannedTickets = tickets[domain.TicketScanned]
	out.UnscannedTickets = tickets[domain.TicketUnscanned]

	sums, err := s.Stats.TransactionSums(nil)
	if err != nil {
		return AdminOverview{}, err
	}
	out.TotalRevenue = utils.RoundMoney(sums[domain.TxnPayment])
	out.TotalRefunds = utils.RoundMoney(sums[domain.TxnRefund])
	out.Profit = utils.RoundMoney(sums[domain.TxnPayment] - sums[domain.TxnRefund])
	return out, nil
}

// SeriesPoint is one bucket of a reporting series: bookings created plus
// money moved within the bucket.
type SeriesPoint struct {
	Label    string  `json:"label"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Refunds  float64 `json:"refunds"`
}

// Series builds the admin chart data for one reporting period. "week" buckets
// the current ISO week by weekday, "month" buckets the current month by week,
// "year" buckets the current year by month.
func (s StatsService) Series(period string) ([]SeriesPoint, error) {
	now := s.now()
	var buckets []seriesBucket

	switch period {
	case "week":
		buckets = weekBuckets(now)
	case "month":
		buckets = monthBuckets(now)
	case "year":
		buckets = yearBuckets(now)
	default:
		return nil, domain.ValidationError{Field: "period", Msg: "period must be one of: week, month, year"}
	}

	out := make([]SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		counts, err := s.Stats.BookingStatusCounts(&b.filter, nil)
		if err != nil {
			return nil, err
		}
		sums, err := s.Stats.TransactionSums(&b.filter)
		if err != nil {
			return nil, err
		}

		point := SeriesPoint{
			Label:   b.label,
			Revenue: utils.RoundMoney(sums[domain.TxnPayment]),
			Refunds: utils.RoundMoney(sums[domain.TxnRefund]),
		}
		for _, n := range counts {
			point.Bookings += n
		}
		out = append(out, point)
	}
	return out, nil
}

type seriesBucket struct {
	label  string
	filter repositories.PeriodFilter
}

// weekBuckets covers Monday through Sunday of the week containing now.
// DAYOFWEEK is 1=Sunday..7=Saturday in MySQL.
func weekBuckets(now time.Time) []seriesBucket {
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	dayOfWeek := []int{2, 3, 4, 5, 6, 7, 1}

	today := utils.FormatDate(now)
	buckets := make([]seriesBucket, 0, 7)
	for i, label := range labels {
		buckets = append(buckets, seriesBucket{
			label: label,
			filter: repositories.PeriodFilter{
				Expr: `YEARWEEK(created_at, 1) = YEARWEEK(?, 1) AND DAYOFWEEK(created_at) = ?`,
				Args: []any{today, dayOfWeek[i]},
			},
		})
	}
	return buckets
}

// monthBuckets splits the current month into calendar weeks: days 1-7, 8-14,
// 15-21, 22-28 and 29+.
func monthBuckets(now time.Time) []seriesBucket {
	year, month := now.Year(), int(now.Month())
	buckets := make([]seriesBucket, 0, 5)
	for week := 0; week < 5; week++ {
		buckets = append(buckets, seriesBucket{
			label: fmt.Sprintf("Week %d", week+1),
			filter: repositories.PeriodFilter{
				Expr: `YEAR(created_at) = ? AND MONTH(created_at) = ? AND FLOOR((DAY(created_at)-1)/7) = ?`,
				Args: []any{year, month, week},
			},
		})
	}
	return buckets
}

func yearBuckets(now time.Time) []seriesBucket {
	year := now.Year()
	buckets := make([]seriesBucket, 0, 12)
	for m := time.January; m <= time.December; m++ {
		buckets = append(buckets, seriesBucket{
			label: m.String()[:3],
			filter: repositories.PeriodFilter{
				Expr: `YEAR(created_at) = ? AND MONTH(created_at) = ?`,
				Args: []any{year, int(m)},
			},
		})
	}
	return buckets
}
