package handler

// Console paths. Keep a single source of truth to avoid path drift across handlers and tests.
const (
	// HomePath is where "/" and unknown paths land.
	HomePath = "/" + clientsSlug

	LivePath     = "/live"
	ReadyPath    = "/ready"
	AssetsPrefix = "/assets"

	formSegment   = "/form"
	deleteSegment = "/delete"
	pageParam     = "page"
	confirmField  = "confirm"
	confirmYes    = "yes"
)

const (
	clientsSlug      = "clients"
	trainersSlug     = "trainers"
	classesSlug      = "classes"
	membershipsSlug  = "memberships"
	inscriptionsSlug = "inscriptions"
	paymentsSlug     = "payments"
)
