package main

import (
	"context"
	"io"

	"github.com/fwojciec/ldharvest"
	"github.com/fwojciec/ldharvest/harvest"
	"github.com/fwojciec/ldharvest/jsonl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Sitemaps  ldharvest.SitemapService
	Harvester *harvest.Harvester

	// Writer is the output file, used directly for clearing stale output
	// and for the post-run report. The Harvester may hold a decorated view
	// of the same writer.
	Writer *jsonl.Writer
}

// HarvestCmd runs the harvest over the resolved page list.
type HarvestCmd struct {
	URLs    []string
	Sitemap bool
	Filters []string
}
