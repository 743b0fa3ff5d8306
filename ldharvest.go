// Package ldharvest extracts embedded JSON-LD metadata from web pages and
// prepares it for loading into a search index. A run downloads each
// configured page, decodes its structured-data blocks, normalizes the
// resulting records so they are self-contained, filters out purely
// structural entries, deduplicates within the run, and appends what remains
// to a newline-delimited JSON file consumed by a downstream loader.
//
// This package contains domain types and interfaces only. Implementations
// live in subdirectories named after their primary dependency (http,
// goquery, jsonl) or their role (harvest, mock).
package ldharvest
