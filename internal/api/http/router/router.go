package router

import (
	"context"

	"github.com/dtroode/users-server/internal/api/http/handler"
	"github.com/dtroode/users-server/internal/api/http/middleware"
	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/logger"
)

// UserHandler serves the five users routes.
type UserHandler interface {
	Create(ctx context.Context, req *request.Request) response.Response
	ReadOne(ctx context.Context, req *request.Request) response.Response
	ReadAll(ctx context.Context, req *request.Request) response.Response
	Update(ctx context.Context, req *request.Request) response.Response
	Delete(ctx context.Context, req *request.Request) response.Response
}

// Route identifies the handler a request is dispatched to.
type Route int

const (
	RouteNotFound Route = iota
	RoutePreflight
	RouteCreate
	RouteReadOne
	RouteReadAll
	RouteUpdate
	RouteDelete
)

var routeNames = map[Route]string{
	RouteNotFound:  "not_found",
	RoutePreflight: "preflight",
	RouteCreate:    "create",
	RouteReadOne:   "read_one",
	RouteReadAll:   "read_all",
	RouteUpdate:    "update",
	RouteDelete:    "delete",
}

func (r Route) String() string {
	return routeNames[r]
}

// Router matches requests against /api/{namespace}/users[/{id}].
type Router struct {
	users     UserHandler
	namespace string
	logger    *logger.Logger
}

// New creates a Router. An empty namespace accepts any single segment.
func New(users UserHandler, namespace string, logger *logger.Logger) *Router {
	return &Router{
		users:     users,
		namespace: namespace,
		logger:    logger,
	}
}

// Match classifies req. OPTIONS on any path is a preflight.
func (r *Router) Match(req *request.Request) Route {
	if req.Method == "OPTIONS" {
		return RoutePreflight
	}
	if !r.isUsersPath(req.Segments) {
		return RouteNotFound
	}

	member := req.HasTrailingSegment()
	switch req.Method {
	case "POST":
		return RouteCreate
	case "GET":
		if member {
			return RouteReadOne
		}
		return RouteReadAll
	case "PUT":
		if member {
			return RouteUpdate
		}
	case "DELETE":
		if member {
			return RouteDelete
		}
	}

	return RouteNotFound
}

func (r *Router) isUsersPath(segments []string) bool {
	if len(segments) < 3 || segments[0] != "api" || segments[2] != "users" {
		return false
	}
	if r.namespace == "" {
		return segments[1] != ""
	}
	return segments[1] == r.namespace
}

// Dispatch routes req to its handler.
func (r *Router) Dispatch(ctx context.Context, req *request.Request) response.Response {
	route := r.Match(req)
	r.logger.Debug("Router: dispatching request", "route", route.String(), "method", req.Method, "path", req.Path)

	switch route {
	case RoutePreflight:
		return response.OK("")
	case RouteCreate:
		return r.users.Create(ctx, req)
	case RouteReadOne:
		return r.users.ReadOne(ctx, req)
	case RouteReadAll:
		return r.users.ReadAll(ctx, req)
	case RouteUpdate:
		return r.users.Update(ctx, req)
	case RouteDelete:
		return r.users.Delete(ctx, req)
	default:
		return response.NotFound(response.MsgRouteNotFound)
	}
}

// Register returns the dispatch function wrapped with logging and panic recovery.
func (r *Router) Register() handler.Func {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.Recover(r.logger)

	return logging.Wrap(recoverer(r.Dispatch))
}
