// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets"
	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
	"github.com/DJBartoli/YouTube-Science-Project/internal/page"
	"github.com/DJBartoli/YouTube-Science-Project/internal/session"
)

type binderInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Inputs      []string `json:"inputs"`
}

// selection merges the query into the session's state and stores the result.
func (s *Server) selection(c *gin.Context) filter.State {
	q := c.Request.URL.Query()
	return s.sessions.Update(session.ID(c), func(st filter.State) filter.State {
		return st.Apply(q)
	})
}

func (s *Server) handlePage(p page.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := s.selection(c)
		v := s.builder.Build(c.Request.Context(), p, st, false)

		var buf bytes.Buffer
		if err := page.Render(&buf, v); err != nil {
			slog.Error("render page", "page", p.Slug, "error", err)
			respondError(c, http.StatusInternalServerError, "render failed")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func (s *Server) handleChart(c *gin.Context) {
	name := c.Param("binder")
	st := s.selection(c)

	res, err := binder.Run(c.Request.Context(), s.env, name, st)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, binder.ErrUnknownBinder), errors.Is(err, assets.ErrMissingAsset):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		slog.Warn("binder failed", "binder", name, "error", err)
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleBinders(c *gin.Context) {
	names := binder.List()
	out := make([]binderInfo, 0, len(names))
	for _, name := range names {
		b := binder.Get(name)
		out = append(out, binderInfo{Name: name, Description: b.Description(), Inputs: b.Inputs()})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleYearStep(c *gin.Context) {
	step := filter.Step(c.Query("step"))
	if step != filter.StepBack && step != filter.StepForward {
		respondError(c, http.StatusBadRequest, `step must be "back" or "forward"`)
		return
	}
	st := s.sessions.Update(session.ID(c), func(st filter.State) filter.State {
		st.Year = filter.StepYear(st.Year, step)
		return st
	})
	c.JSON(http.StatusOK, gin.H{"year": st.Year})
}
