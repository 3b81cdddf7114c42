package constants

// Roles
const (
	ROLE_ADMIN    = "admin"
	ROLE_STAFF    = "staff"
	ROLE_CUSTOMER = "customer"
)

// Account states
const (
	USER_STATUS_PENDING  = "Pending"
	USER_STATUS_ACTIVE   = "Active"
	USER_STATUS_REJECTED = "Rejected"
)

// Order lifecycle
const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_PREPARING = "preparing"
	ORDER_STATUS_READY     = "ready"
	ORDER_STATUS_COMPLETED = "completed"
	ORDER_STATUS_CANCELLED = "cancelled"
)

var OrderStatuses = []string{
	ORDER_STATUS_PENDING,
	ORDER_STATUS_PREPARING,
	ORDER_STATUS_READY,
	ORDER_STATUS_COMPLETED,
	ORDER_STATUS_CANCELLED,
}

// Reservation lifecycle
const (
	RESERVATION_STATUS_PENDING   = "Pending"
	RESERVATION_STATUS_CONFIRMED = "Confirmed"
	RESERVATION_STATUS_CANCELLED = "Cancelled"
)

// Help desk ticket lifecycle
const (
	TICKET_STATUS_OPEN        = "Open"
	TICKET_STATUS_IN_PROGRESS = "In Progress"
	TICKET_STATUS_RESOLVED    = "Resolved"
)

// Menu categories
var MenuCategories = []string{"beverages", "food", "desserts", "snacks"}

// Realtime event types
const (
	EVENT_NEW_ORDER           = "NEW_ORDER"
	EVENT_ORDER_STATUS_UPDATE = "ORDER_STATUS_UPDATE"
)

// Messages
const (
	ERROR_INTERNAL_ERROR     = "Something went wrong, please try again later"
	MISSING_LOGIN_INPUT      = "Missing login credentials"
	INVALID_EMAIL            = "Email does not exist"
	INVALID_PASSWORD         = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE       = "Account has not been approved"
	NOT_ADMIN                = "Admin access only"
	NOT_STAFF                = "Staff access only"
	EMAIL_EXISTS             = "Email already exists"
	USERNAME_EXISTS          = "Username already exists"
	ORDER_NOT_FOUND          = "Order not found"
	DATA_INPUT_IS_NOT_NUMBER = "Input data must be a number"
)
