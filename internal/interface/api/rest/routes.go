package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth      = RouteApiV1 + "/auth"
	RouteSignup    = RouteAuth + "/signup"
	RouteLogin     = RouteAuth + "/login"
	RouteLogout    = RouteAuth + "/logout"
	RouteLogoutAll = RouteAuth + "/logout-all"

	// users; "me" lives on the plural path, lookups by id on the
	// singular one
	RouteUserMe = RouteApiV1 + "/users/me"
	RouteUser   = RouteApiV1 + "/user/:user_id"

	// files
	RouteFiles = RouteApiV1 + "/files"
	RouteFile  = RouteApiV1 + "/file/:file_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
