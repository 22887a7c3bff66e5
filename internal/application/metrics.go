package application

import "expvar"

// counters are served by the debug module under /api/debug/vars.
var counters = expvar.NewMap("happnhere")

const (
	metricUsersRegistered = "users_registered"
	metricLoginsFailed    = "logins_failed"
	metricEventsCreated   = "events_created"
	metricEventsDeleted   = "events_deleted"
	metricEventsJoined    = "events_joined"
	metricClubsCreated    = "clubs_created"
	metricClubsFollowed   = "clubs_followed"
	metricPaymentsCreated = "payments_created"
)
