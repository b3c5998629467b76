// Package api exposes the solver over HTTP: POST /solve runs (or coalesces
// and caches) a solve, GET /solutions/{id} retrieves a previously completed
// one. Built on fiber, the same framework and middleware stack the
// reference trading API uses.
package api

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
	"github.com/routekit/vrpkit/cache"
	"github.com/routekit/vrpkit/solver"
	"github.com/routekit/vrpkit/storage"
	"github.com/routekit/vrpkit/telemetry"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Server wires the solve orchestrator to an HTTP surface: a per-IP rate
// limiter bounds request volume, a singleflight group collapses concurrent
// requests carrying byte-identical bodies into one Solve call, and the
// result is cached and persisted before the response is written.
type Server struct {
	App *fiber.App

	store   storage.Store
	solCache *cache.SolutionCache
	logger  *telemetry.Logger
	options solver.Options

	group      singleflight.Group
	limitersMu sync.Mutex
	limiters   map[string]*rate.Limiter
	rateLimit  rate.Limit
	rateBurst  int
}

// NewServer builds a Server. rateLimit/rateBurst configure the per-IP
// token-bucket limiter (0 disables limiting).
func NewServer(store storage.Store, solCache *cache.SolutionCache, log *telemetry.Logger, opts solver.Options, rateLimit rate.Limit, rateBurst int) *Server {
	if log == nil {
		log = telemetry.NewNoop()
	}

	s := &Server{
		store:     store,
		solCache:  solCache,
		logger:    log,
		options:   opts,
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: rateLimit,
		rateBurst: rateBurst,
	}

	app := fiber.New(fiber.Config{AppName: "vrpkit"})
	app.Use(logger.New())
	app.Use(cors.New())

	app.Post("/solve", s.handleSolve)
	app.Get("/solutions/:id", s.handleGetSolution)
	app.Get("/health", s.handleHealth)

	s.App = app

	return s
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) allow(ip string) bool {
	if s.rateLimit <= 0 {
		return true
	}

	s.limitersMu.Lock()
	limiter, ok := s.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(s.rateLimit, s.rateBurst)
		s.limiters[ip] = limiter
	}
	s.limitersMu.Unlock()

	return limiter.Allow()
}

func (s *Server) handleSolve(c *fiber.Ctx) error {
	if !s.allow(c.IP()) {
		return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
	}

	var req SolveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	fp, err := Fingerprint(req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ctx := c.Context()

	v, err, _ := s.group.Do(fp, func() (interface{}, error) {
		return s.solveOnce(ctx, fp, req)
	})
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	resp := v.(solveResponse)

	return c.JSON(resp)
}

type solveResponse struct {
	ID     string         `json:"id"`
	Cached bool           `json:"cached"`
	Result *solver.Result `json:"result"`
}

// solveOnce runs the cache-then-solve path for one fingerprint. Concurrent
// requests for the same fingerprint share this call via s.group, so a cache
// hit or a Solve run happens at most once per distinct request body.
func (s *Server) solveOnce(ctx context.Context, fp string, req SolveRequest) (solveResponse, error) {
	if s.solCache != nil {
		if cached, err := s.solCache.Get(ctx, fp); err == nil && cached != nil {
			return solveResponse{ID: fp, Cached: true, Result: cached}, nil
		}
	}

	id := uuid.NewString()
	if s.store != nil {
		if err := s.store.CreateSubmission(ctx, id, fp); err != nil {
			s.logger.Warn("create submission failed", "err", err)
		}
	}

	in, err := BuildInput(req)
	if err != nil {
		if s.store != nil {
			_ = s.store.FailSubmission(ctx, id, err)
		}
		return solveResponse{}, err
	}

	opts := s.options
	if req.NBSearches > 0 {
		opts.NBSearches = req.NBSearches
	}
	if req.Depth > 0 {
		opts.Depth = req.Depth
	}
	if req.NBThreads > 0 {
		opts.NBThreads = req.NBThreads
	}
	if req.TimeoutMS > 0 {
		opts.Timeout = time.Duration(req.TimeoutMS) * time.Millisecond
	}

	result, err := solver.Solve(ctx, in, opts)
	if err != nil {
		if s.store != nil {
			_ = s.store.FailSubmission(ctx, id, err)
		}
		return solveResponse{}, err
	}

	if s.store != nil {
		if err := s.store.CompleteSubmission(ctx, id, result); err != nil {
			s.logger.Warn("complete submission failed", "err", err)
		}
	}
	if s.solCache != nil {
		if err := s.solCache.Set(ctx, fp, result); err != nil {
			s.logger.Warn("cache set failed", "err", err)
		}
	}

	return solveResponse{ID: id, Result: result}, nil
}

func (s *Server) handleGetSolution(c *fiber.Ctx) error {
	id := c.Params("id")

	sub, err := s.store.GetSubmission(c.Context(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			return fiber.NewError(fiber.StatusNotFound, "submission not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(sub)
}

// Listen starts the HTTP server on addr, blocking until it stops.
func (s *Server) Listen(addr string) error {
	return s.App.Listen(addr)
}
