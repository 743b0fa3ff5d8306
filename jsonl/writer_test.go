package jsonl_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/ldharvest"
	"github.com/fwojciec/ldharvest/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ldharvest.RecordWriter = (*jsonl.Writer)(nil)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("appends one line per record", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		w := jsonl.NewWriter(path)
		ctx := context.Background()

		require.NoError(t, w.Write(ctx, ldharvest.Record{"@type": "Article", "name": "first"}))
		require.NoError(t, w.Write(ctx, ldharvest.Record{"@type": "HowTo", "name": "second"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"first"`)
		assert.Contains(t, lines[1], `"second"`)
	})

	t.Run("survives across writer instances", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		ctx := context.Background()

		require.NoError(t, jsonl.NewWriter(path).Write(ctx, ldharvest.Record{"name": "a"}))
		require.NoError(t, jsonl.NewWriter(path).Write(ctx, ldharvest.Record{"name": "b"}))

		records, err := jsonl.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("does not escape html or unicode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		w := jsonl.NewWriter(path)

		rec := ldharvest.Record{
			"@type": "Article",
			"name":  "Técnicas <avanzadas> & más",
		}
		require.NoError(t, w.Write(context.Background(), rec))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Técnicas <avanzadas> & más")
		assert.NotContains(t, string(data), `\u003c`)
	})

	t.Run("null values preserved", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		w := jsonl.NewWriter(path)

		require.NoError(t, w.Write(context.Background(), ldharvest.Record{"url": nil, "_extracted_at": nil}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"url":null`)
		assert.Contains(t, string(data), `"_extracted_at":null`)
	})

	t.Run("canceled context aborts the write", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		w := jsonl.NewWriter(path)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.Error(t, w.Write(ctx, ldharvest.Record{"name": "never"}))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "no file should be created")
	})
}

func TestWriter_Remove(t *testing.T) {
	t.Parallel()

	t.Run("clears an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		w := jsonl.NewWriter(path)
		require.NoError(t, w.Write(context.Background(), ldharvest.Record{"name": "stale"}))

		cleared, err := w.Remove()
		require.NoError(t, err)
		assert.True(t, cleared)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Parallel()

		w := jsonl.NewWriter(filepath.Join(t.TempDir(), "never-written.jsonl"))

		cleared, err := w.Remove()
		require.NoError(t, err)
		assert.False(t, cleared)
	})
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("skips blank and undecodable lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		content := `{"@type": "Article", "name": "good"}

not json at all
{"@type": "HowTo", "name": "also good"}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		records, err := jsonl.ReadFile(path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "good", records[0]["name"])
		assert.Equal(t, "also good", records[1]["name"])
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := jsonl.ReadFile(filepath.Join(t.TempDir(), "absent.jsonl"))
		require.Error(t, err)
	})

	t.Run("round-trips written records", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jsonl")
		w := jsonl.NewWriter(path)
		in := ldharvest.Record{
			"@type":         "SoftwareSourceCode",
			"name":          "snippet",
			"_code_content": "a\nb",
		}
		require.NoError(t, w.Write(context.Background(), in))

		records, err := jsonl.ReadFile(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "a\nb", records[0]["_code_content"])
	})
}
