package constvars

type ContextKey string

const (
	ContextSessionDataKey ContextKey = "session_data"
	ContextRequestIDKey   ContextKey = "request_id"
)

const (
	ResourceAuth         = "auth"
	ResourceUsers        = "users"
	ResourceCustomers    = "customers"
	ResourceProducts     = "products"
	ResourceAppointments = "appointments"
	ResourceFinancial    = "financial"
	ResourceConfig       = "config"
	ResourcePublic       = "public"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	StockMovementIn  = "in"
	StockMovementOut = "out"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	FinancialStatusPending  = "pending"
	FinancialStatusPaid     = "paid"
	FinancialStatusReceived = "received"
	FinancialStatusOverdue  = "overdue"
)

const (
	// Booking slots are laid out on a half-hour grid.
	SlotStepMinutes = 30

	// Working-day bounds for the owner-facing availability check, which
	// runs before the company has configured opening hours.
	OwnerDayOpenMinutes  = 9 * 60
	OwnerDayCloseMinutes = 18 * 60

	// Fallback when a service carries no explicit duration.
	DefaultServiceDurationMinutes = 60

	// Public calendar exposes 30 days, paged seven at a time. The
	// largest valid page offset is therefore 23 (23+7 = 30).
	CalendarWindowDays  = 30
	CalendarPageDays    = 7
	CalendarMaxOffset   = CalendarWindowDays - CalendarPageDays
	CalendarDateLayout  = "2006-01-02"
	CalendarClockLayout = "15:04"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
