package domain

// Closed enum types. Values arriving over the wire or from the database go
// through the Parse* functions; anything outside the accepted set is a
// ValidationError at the boundary instead of a silent bad string downstream.

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleMember, RoleAdmin:
		return UserRole(s), nil
	}
	return "", ValidationError{Field: "role", Msg: "must be one of: member, admin"}
}

type TravelMode string

const (
	ModeAir   TravelMode = "air"
	ModeCoach TravelMode = "coach"
	ModeTrain TravelMode = "train"
)

// TravelModes lists every mode in a stable order.
var TravelModes = []TravelMode{ModeAir, ModeCoach, ModeTrain}

func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case ModeAir, ModeCoach, ModeTrain:
		return TravelMode(s), nil
	}
	return "", ValidationError{Field: "mode", Msg: "must be one of: air, coach, train"}
}

type SeatClass string

const (
	ClassEconomy  SeatClass = "economy"
	ClassBusiness SeatClass = "business"
	ClassFirst    SeatClass = "first"
)

func ParseSeatClass(s string) (SeatClass, error) {
	switch SeatClass(s) {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return SeatClass(s), nil
	}
	return "", ValidationError{Field: "type", Msg: "must be one of: economy, business, first"}
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: "must be one of: pending, confirmed, cancelled"}
}

type ScannedStatus string

const (
	TicketScanned   ScannedStatus = "scanned"
	TicketUnscanned ScannedStatus = "unscanned"
)

func ParseScannedStatus(s string) (ScannedStatus, error) {
	switch ScannedStatus(s) {
	case TicketScanned, TicketUnscanned:
		return ScannedStatus(s), nil
	}
	return "", ValidationError{Field: "ticket", Msg: "must be one of: scanned, unscanned"}
}

type PaymentMethod string

const (
	MethodPaypal  PaymentMethod = "paypal"
	MethodRevolut PaymentMethod = "revolut"
	MethodStripe  PaymentMethod = "stripe"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodPaypal, MethodRevolut, MethodStripe:
		return PaymentMethod(s), nil
	}
	return "", ValidationError{Field: "payment_method", Msg: "must be one of: paypal, revolut, stripe"}
}

type GlobalStatus string

const (
	StatusActive   GlobalStatus = "active"
	StatusInactive GlobalStatus = "inactive"
)

func ParseGlobalStatus(s string) (GlobalStatus, error) {
	switch GlobalStatus(s) {
	case StatusActive, StatusInactive:
		return GlobalStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: "must be one of: active, inactive"}
}

type TransactionStatus string

const (
	TxnPending TransactionStatus = "pending"
	TxnSuccess TransactionStatus = "success"
	TxnFailed  TransactionStatus = "failed"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case TxnPending, TxnSuccess, TxnFailed:
		return TransactionStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: "must be one of: pending, success, failed"}
}

type TransactionType string

const (
	TxnPayment TransactionType = "payment"
	TxnRefund  TransactionType = "refund"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TxnPayment, TxnRefund:
		return TransactionType(s), nil
	}
	return "", ValidationError{Field: "type", Msg: "must be one of: payment, refund"}
}

type ContactStatus string

const (
	ContactUnread ContactStatus = "unread"
	ContactRead   ContactStatus = "read"
)

func ParseContactStatus(s string) (ContactStatus, error) {
	switch ContactStatus(s) {
	case ContactUnread, ContactRead:
		return ContactStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: "must be one of: unread, read"}
}
