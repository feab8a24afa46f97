// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DJBartoli/YouTube-Science-Project/internal/testable"
)

// resetFlags restores every package-level flag variable so commands do not
// see values from an earlier test.
func resetFlags(t *testing.T) {
	t.Helper()
	app = appFlags{ConfigDir: t.TempDir()}
	verbose, quiet, noColor = false, false, true
	renderOutput = ""
	renderParams = map[string]string{}
	validateKeywords = false
	validateProblemsOnly = false
	cmdFS = testable.DefaultFS
}

// execute runs rootCmd with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(t)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// fakeGeocoder answers every search with the centre of Germany.
func fakeGeocoder(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"51.16","lon":"10.45"}]`))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return ExitOK
	}
	ece, ok := err.(*exitCodeError)
	if !ok {
		t.Fatalf("error %v is not an exitCodeError", err)
	}
	return ece.code
}
