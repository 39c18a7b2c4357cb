package views

// Маршруты экранов
const (
	RouteHome         = "/"
	RouteLogin        = "/login"
	RouteReservations = "/admin/reservations"
	RouteAdmins       = "/admin/admins"
)
