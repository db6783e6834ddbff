package query

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"satfab.io/satfab/ent"
	"satfab.io/satfab/internal/api/middleware"
	apperrors "satfab.io/satfab/internal/pkg/errors"
	"satfab.io/satfab/internal/pkg/logger"
	"satfab.io/satfab/internal/service"
)

// Server holds the contract's handlers and their dependencies.
type Server struct {
	satellites  *service.SatelliteService
	electronics *service.ElectronicsService
	materials   *service.MaterialService
	stands      *service.StandService
	calendar    *service.CalendarService

	entClient *ent.Client
	pool      *pgxpool.Pool
	jwtConfig middleware.JWTConfig

	ops map[string]operation
}

// ServerDeps contains the dependencies for creating a Server.
type ServerDeps struct {
	Satellites  *service.SatelliteService
	Electronics *service.ElectronicsService
	Materials   *service.MaterialService
	Stands      *service.StandService
	Calendar    *service.CalendarService
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTConfig   middleware.JWTConfig
}

// NewServer creates a Server and builds its operation dispatch table.
func NewServer(deps ServerDeps) *Server {
	s := &Server{
		satellites:  deps.Satellites,
		electronics: deps.Electronics,
		materials:   deps.Materials,
		stands:      deps.Stands,
		calendar:    deps.Calendar,
		entClient:   deps.EntClient,
		pool:        deps.Pool,
		jwtConfig:   deps.JWTConfig,
	}
	s.ops = s.operations()
	return s
}

// Execute handles POST /api/v1/query: it resolves the named operation, checks
// the caller's role against the operation's allow list, runs it, and returns
// the data envelope. All failures flow through the error middleware as the
// errors envelope.
func (s *Server) Execute(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid request body"))
		return
	}
	if req.OperationName == "" {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "operationName is required"))
		return
	}

	op, ok := s.ops[req.OperationName]
	if !ok {
		c.Error(apperrors.ErrUnknownOperation(req.OperationName))
		return
	}

	role := middleware.GetRole(c.Request.Context())
	if !op.roles[role] {
		c.Error(apperrors.Forbidden(apperrors.CodeForbidden,
			"operation "+req.OperationName+" is not allowed for role "+role))
		return
	}

	data, err := op.handler(c.Request.Context(), req.Arguments)
	if err != nil {
		if _, ok := apperrors.IsAppError(err); ok {
			c.Error(err)
			return
		}
		logger.Error("operation failed",
			zap.String("operation", req.OperationName),
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.Error(err),
		)
		c.Error(apperrors.Wrap(err, apperrors.CodeStoreError, "store operation failed", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
