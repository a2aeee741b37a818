package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"branchboard/internal/planner"
	"branchboard/pkg/datemath"
	"branchboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage, pinged by the readiness probe
	db *sql.DB

	// Planner domain
	plannerUC          planner.UseCase
	dateParser         *datemath.Parser
	optimizeRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	PlannerUC          planner.UseCase
	DateParser         *datemath.Parser
	OptimizeRatePerMin int
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		db:                 cfg.DB,
		plannerUC:          cfg.PlannerUC,
		dateParser:         cfg.DateParser,
		optimizeRatePerMin: cfg.OptimizeRatePerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerUC == nil {
		return errors.New("planner usecase is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
