package watch

const (
	routeIndex  = "/"
	routeEvents = "/events"
)

const sseEventGraph = "graph"
