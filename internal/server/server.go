// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard pages and the chart API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/page"
	"github.com/DJBartoli/YouTube-Science-Project/internal/session"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server routes requests to pages and binders.
type Server struct {
	env      *binder.Env
	builder  *page.Builder
	sessions *session.Store
	engine   *gin.Engine
}

// New wires the routes for pages over env.
func New(env *binder.Env, pages []page.Page, sessions *session.Store) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		env:      env,
		builder:  page.NewBuilder(env, pages),
		sessions: sessions,
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger(), session.Middleware(sessions))

	for _, p := range pages {
		s.engine.GET(p.Path, s.handlePage(p))
	}
	api := s.engine.Group("/api")
	api.GET("/binders", s.handleBinders)
	api.GET("/charts/:binder", s.handleChart)
	api.POST("/keywords/year", s.handleYearStep)
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not found")
	})
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
