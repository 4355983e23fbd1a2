// Package server is the storefront REST API: gin handlers over the
// repository ports, keyed by a session cookie.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Repositories groups the stores the handlers read and write.
type Repositories struct {
	Products port.ProductRepository
	Carts    port.CartRepository
	Orders   port.OrderRepository
	Profiles port.ProfileRepository
	Contacts port.ContactRepository
}

func (r Repositories) validate() error {
	switch {
	case r.Products == nil:
		return fmt.Errorf("products repository is nil")
	case r.Carts == nil:
		return fmt.Errorf("carts repository is nil")
	case r.Orders == nil:
		return fmt.Errorf("orders repository is nil")
	case r.Profiles == nil:
		return fmt.Errorf("profiles repository is nil")
	case r.Contacts == nil:
		return fmt.Errorf("contacts repository is nil")
	}
	return nil
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCORSOrigins limits cross-origin access. "*" allows every origin.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithSecureCookie marks the session cookie Secure, for TLS deployments.
func WithSecureCookie(secure bool) Option {
	return func(s *Server) {
		s.secureCookie = secure
	}
}

type Server struct {
	repos        Repositories
	logger       *zap.Logger
	origins      []string
	secureCookie bool
	engine       *gin.Engine
	now          func() time.Time
}

func New(repos Repositories, opts ...Option) (*Server, error) {
	if err := repos.validate(); err != nil {
		return nil, err
	}

	s := &Server{
		repos:   repos,
		logger:  zap.NewNop(),
		origins: []string{"*"},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	corsCfg := corsConfig(s.origins)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("corsCfg.Validate: %w", err)
	}

	engine := gin.New()
	engine.Use(requestLogger(s.logger), gin.Recovery(), cors.New(corsCfg), session(s.secureCookie))
	s.routes(engine)
	s.engine = engine

	return s, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

func (s *Server) routes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/products/", s.listProducts)

		api.GET("/cart/", s.getCart)
		api.POST("/cart/add/", s.addToCart)
		api.PUT("/cart/update/", s.updateCartItem)
		api.DELETE("/cart/remove/", s.removeFromCart)

		api.POST("/buy/", s.buy)
		api.GET("/orders/", s.listOrders)

		api.GET("/profile/", s.getProfile)
		api.PUT("/profile/update/", s.updateProfile)

		api.GET("/contact/", s.contactInfo)
		api.POST("/contact/", s.submitContact)
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully, letting in-flight requests finish.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	s.logger.Info("api server started", zap.String("addr", l.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	s.logger.Info("api server shutting down")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("srv.Serve: %w", err)
	}

	return nil
}
