package handlers

import (
	"travelbackend/internal/domain/models"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Response shaping lives here so models stay transport-agnostic.

func userJSON(u models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

func destinationJSON(d models.Destination) gin.H {
	return gin.H{
		"id":         d.ID,
		"name":       d.Name,
		"air":        d.Air,
		"coach":      d.Coach,
		"train":      d.Train,
		"status":     d.Status,
		"created_at": d.CreatedAt,
	}
}

func destinationsJSON(dests []models.Destination) []gin.H {
	out := make([]gin.H, 0, len(dests))
	for _, d := range dests {
		out = append(out, destinationJSON(d))
	}
	return out
}

func avenueJSON(a models.Avenue) gin.H {
	out := gin.H{
		"id":                    a.ID,
		"leave_destination_id":  a.LeaveDestinationID,
		"arrive_destination_id": a.ArriveDestinationID,
		"leave_time":            a.LeaveTime,
		"arrive_time":           a.ArriveTime,
		"price":                 utils.RoundMoney(a.Price),
		"status":                a.Status,
		"created_at":            a.CreatedAt,
	}
	if a.LeaveDestination != nil {
		out["leave_destination"] = destinationJSON(*a.LeaveDestination)
	}
	if a.ArriveDestination != nil {
		out["arrive_destination"] = destinationJSON(*a.ArriveDestination)
	}
	if modes := a.SupportedModes(); len(modes) > 0 {
		fares := gin.H{}
		for _, m := range modes {
			fares[string(m)] = utils.RoundMoney(services.ModeFare(m, a.Price))
		}
		out["mode_fares"] = fares
	}
	return out
}

func offerJSON(o models.Offer) gin.H {
	return gin.H{
		"avenue":            avenueJSON(o.Avenue),
		"mode":              o.Mode,
		"discount":          o.Discount,
		"prices":            o.Prices,
		"seat_availability": o.SeatAvailability,
		"max_seats":         o.MaxSeats,
		"booked_seats":      o.BookedSeats,
	}
}

func transactionJSON(t models.Transaction) gin.H {
	return gin.H{
		"id":             t.ID,
		"identifier":     t.Identifier,
		"booking_id":     t.BookingID,
		"amount":         utils.RoundMoney(t.Amount),
		"payment_method": t.PaymentMethod,
		"status":         t.Status,
		"type":           t.Type,
		"created_at":     t.CreatedAt,
	}
}

func transactionsJSON(txns []models.Transaction) []gin.H {
	out := make([]gin.H, 0, len(txns))
	for _, t := range txns {
		out = append(out, transactionJSON(t))
	}
	return out
}

func bookingJSON(b models.Booking) gin.H {
	out := gin.H{
		"id":         b.ID,
		"identifier": b.Identifier,
		"avenue_id":  b.AvenueID,
		"user_id":    b.UserID,
		"date":       utils.FormatDate(b.Date),
		"mode":       b.Mode,
		"type":       b.Type,
		"seat":       b.Seat,
		"price":      utils.RoundMoney(b.Price),
		"status":     b.Status,
		"ticket":     b.Ticket,
		"created_at": b.CreatedAt,
		"updated_at": b.UpdatedAt,
	}
	if b.Avenue != nil {
		out["avenue"] = avenueJSON(*b.Avenue)
	}
	if b.User != nil {
		out["user"] = userJSON(*b.User)
	}
	if b.Transactions != nil {
		out["transactions"] = transactionsJSON(b.Transactions)
	}
	return out
}

func bookingsJSON(bookings []models.Booking) []gin.H {
	out := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingJSON(b))
	}
	return out
}

func faqJSON(f models.FAQ) gin.H {
	return gin.H{
		"id":         f.ID,
		"question":   f.Question,
		"answer":     f.Answer,
		"status":     f.Status,
		"created_at": f.CreatedAt,
	}
}

func legalPageJSON(p models.LegalPage) gin.H {
	return gin.H{
		"id":         p.ID,
		"name":       p.Name,
		"slug":       p.Slug,
		"content":    p.Content,
		"status":     p.Status,
		"created_at": p.CreatedAt,
	}
}

func changeLogJSON(cl models.ChangeLog) gin.H {
	return gin.H{
		"id":         cl.ID,
		"name":       cl.Name,
		"content":    cl.Content,
		"version":    cl.Version,
		"status":     cl.Status,
		"created_at": cl.CreatedAt,
	}
}

func contactJSON(ct models.Contact) gin.H {
	return gin.H{
		"id":         ct.ID,
		"name":       ct.Name,
		"email":      ct.Email,
		"subject":    ct.Subject,
		"message":    ct.Message,
		"status":     ct.Status,
		"created_at": ct.CreatedAt,
	}
}
