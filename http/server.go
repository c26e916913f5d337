package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/unifero"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server exposes the engine over HTTP.
//
// Endpoints:
//   - GET  /health  -> liveness probe
//   - POST /process -> same JSON envelope as the CLI's legacy mode
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	svc    unifero.Service
	logger *slog.Logger

	// Addr is the bind address. Set before calling Open().
	Addr string
}

// NewServer creates a new Server wired to the given engine.
func NewServer(svc unifero.Service, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		svc:    svc,
		logger: logger,
	}

	s.router.Use(gin.Recovery(), s.requestLogger())
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/process", s.handleProcess)

	s.server = &http.Server{Handler: s.router}

	return s
}

// Open begins listening on Addr. It returns once the listener is bound;
// serving continues on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server terminated", "err", err)
		}
	}()

	return nil
}

// URL returns the base URL the server is reachable at. Only valid after Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// requestLogger attaches a request ID and logs each request on completion.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		begin := time.Now()
		c.Next()

		s.logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// processPayload mirrors the legacy JSON envelope accepted by the CLI.
type processPayload struct {
	Mode           string `json:"mode"`
	Query          string `json:"query"`
	URL            string `json:"url"`
	Limit          int    `json:"limit"`
	SnippetLen     int    `json:"snippet_len"`
	ContentLen     int    `json:"content_len"`
	IncludeContent *bool  `json:"include_content"`
	ContentLimit   int    `json:"content_limit"`
}

func (s *Server) handleProcess(c *gin.Context) {
	var payload processPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	if payload.Mode == "" {
		payload.Mode = "search"
	}

	switch payload.Mode {
	case "search":
		req := &unifero.SearchRequest{
			Query:      payload.Query,
			Limit:      payload.Limit,
			SnippetLen: payload.SnippetLen,
			ContentLen: payload.ContentLen,
		}
		resp, err := s.svc.Search(c.Request.Context(), req)
		if err != nil {
			s.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)

	case "docs":
		includeContent := true
		if payload.IncludeContent != nil {
			includeContent = *payload.IncludeContent
		}
		contentLen := payload.ContentLimit
		if contentLen == 0 {
			contentLen = payload.ContentLen
		}
		req := &unifero.DocsRequest{
			URL:            payload.URL,
			Limit:          payload.Limit,
			IncludeContent: includeContent,
			ContentLen:     contentLen,
		}
		resp, err := s.svc.Docs(c.Request.Context(), req)
		if err != nil {
			s.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode, use 'search' or 'docs'"})
	}
}

// renderError maps application error codes to HTTP status codes.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch unifero.ErrorCode(err) {
	case unifero.EINVALID:
		status = http.StatusBadRequest
	case unifero.EUNAVAILABLE:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": unifero.ErrorMessage(err)})
}
