// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets/assetstest"
	"github.com/DJBartoli/YouTube-Science-Project/internal/config"
	"github.com/DJBartoli/YouTube-Science-Project/internal/geo"
	"github.com/DJBartoli/YouTube-Science-Project/internal/testable"
)

func TestRootHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"serve", "render", "validate", "config", "mcp", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "verbose", v.Name)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ytdash dev\n", out)
}

func TestExitError_DefaultMessages(t *testing.T) {
	assert.Equal(t, "ytdash: data directory has problems", exitError(ExitAssetFailure, "").Error())
	assert.Equal(t, "ytdash: server failed", exitError(ExitServerFailure, "").Error())
	assert.Equal(t, "ytdash: error", exitError(ExitInvalidArgs, "").Error())
	assert.Equal(t, 2, exitError(ExitAssetFailure, "x").ExitCode())
}

func TestValidate_Fixture(t *testing.T) {
	dir := assetstest.Write(t)
	out, _, err := execute(t, "validate", "--data-dir", dir)

	// The fixture only carries one channel's comment table.
	assert.Equal(t, ExitAssetFailure, exitCode(t, err))
	assert.Contains(t, out, "Tables")
	assert.Contains(t, out, "ok       distribution/DE")
	assert.Contains(t, out, "MISSING  comments/mkbhd")
	assert.NotContains(t, out, "Keyword files")
}

func TestValidate_ProblemsOnlyWithKeywords(t *testing.T) {
	dir := assetstest.Write(t)
	out, _, err := execute(t, "validate", "-d", dir, "--problems-only", "--keywords")

	assert.Equal(t, ExitAssetFailure, exitCode(t, err))
	assert.NotContains(t, out, "distribution/DE")
	assert.Contains(t, out, "Keyword files")
	assert.Contains(t, out, "keywords/sports/2013/image")
}

func TestValidate_MissingDataDir(t *testing.T) {
	_, _, err := execute(t, "validate", "--data-dir", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitAssetFailure, exitCode(t, err))
	assert.Contains(t, err.Error(), "data directory")
}

func TestValidate_BadConfig(t *testing.T) {
	_, _, err := execute(t, "validate", "--cache", "disk")
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
	assert.Contains(t, err.Error(), "cache.kind")
}

func TestRender_ToFile(t *testing.T) {
	dir := assetstest.Write(t)
	outFile := filepath.Join(t.TempDir(), "trends.html")

	_, _, err := execute(t, "render", "trends",
		"--data-dir", dir,
		"--geocoder-url", fakeGeocoder(t),
		"--cache", "none",
		"--param", "country=DE",
		"-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `"type":"pie"`)
	assert.Contains(t, html, `"type":"choroplethmapbox"`)
	assert.Contains(t, html, "disabled")
}

func TestRender_Stdout(t *testing.T) {
	dir := assetstest.Write(t)
	out, _, err := execute(t, "render", "duration-interactions", "-d", dir, "--param", "interaction=Likes")
	require.NoError(t, err)
	assert.Contains(t, out, "Boxplot for Likes")
}

func TestRender_WarnsOnChartError(t *testing.T) {
	dir := assetstest.Write(t)
	_, errOut, err := execute(t, "render", "keyword-analysis", "-d", dir, "--param", "topic=sports")
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning: chart keyword-cloud")
}

func TestRender_UnknownPage(t *testing.T) {
	dir := assetstest.Write(t)
	_, _, err := execute(t, "render", "nope", "-d", dir)
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
	assert.Contains(t, err.Error(), "keyword-analysis")
}

func TestRender_UnknownParam(t *testing.T) {
	dir := assetstest.Write(t)
	_, _, err := execute(t, "render", "trends", "-d", dir, "--param", "colour=red")
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
	assert.Contains(t, err.Error(), "colour")
}

func TestRender_CreateFails(t *testing.T) {
	dir := assetstest.Write(t)
	resetFlags(t)
	mock := &testable.MockFileSystem{
		CreateFn: func(string) (*os.File, error) { return nil, errors.New("read-only") },
	}

	args := []string{"render", "home", "-d", dir, "-o", "out.html"}
	rootCmd.SetArgs(args)
	cmdFS = mock
	err := rootCmd.Execute()
	cmdFS = testable.DefaultFS

	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
	assert.Contains(t, err.Error(), "read-only")
}

func TestConfigShow_Layers(t *testing.T) {
	cfgDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, config.TOMLFileName),
		[]byte("data_dir = \"from-file\"\nlisten = \":9000\"\n"), 0o600))

	out, _, err := execute(t, "config", "show", "--config-dir", cfgDir, "--listen", ":7000")
	require.NoError(t, err)
	assert.Contains(t, out, "data_dir: from-file")
	assert.Regexp(t, `listen: "?:7000"?\n`, out)
	assert.Contains(t, out, "kind: memory")
}

func TestMCPHelp(t *testing.T) {
	out, _, err := execute(t, "mcp", "serve", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "bind_chart")
}

func TestBuildCache(t *testing.T) {
	cfg := config.Defaults()

	cfg.Cache.Kind = config.CacheNone
	cache, cleanup := buildCache(context.Background(), cfg)
	cleanup()
	assert.IsType(t, geo.NopCache{}, cache)

	cfg.Cache.Kind = config.CacheMemory
	cache, cleanup = buildCache(context.Background(), cfg)
	cleanup()
	assert.IsType(t, &geo.MemoryCache{}, cache)

	// An unreachable redis falls back to memory.
	cfg.Cache.Kind = config.CacheRedis
	cfg.Cache.RedisAddr = "127.0.0.1:1"
	cache, cleanup = buildCache(context.Background(), cfg)
	cleanup()
	assert.IsType(t, &geo.MemoryCache{}, cache)
}
