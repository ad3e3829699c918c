package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexQuery/internal/config"
	"dexQuery/internal/dex"
	"dexQuery/internal/model"
)

func runDecode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDecode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}
	if cfg.Kind != "" {
		if _, ok := dex.LookupKind(cfg.Kind); !ok {
			return fmt.Errorf("unknown query kind: %s", cfg.Kind)
		}
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	outWriter, err := newJSONLWriter(cfg.Out, false)
	if err != nil {
		return err
	}
	defer outWriter.Close()

	errWriter, err := newJSONLWriter(cfg.Errors, false)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	logger.Info("decode start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.String("default_kind", cfg.Kind),
	)

	stats, err := decodeRecorded(inputFile, cfg.Kind, outWriter, errWriter)
	if err != nil {
		return err
	}

	logger.Info("decode complete",
		zap.Int("total", stats.total),
		zap.Int("decoded", stats.decoded),
		zap.Int("failed", stats.failed),
	)

	return nil
}

type decodeStats struct {
	total, decoded, failed int
}

type recordWriter interface {
	Write(value interface{}) error
}

// decodeRecorded normalizes each recorded line. Bad lines become DecodeError records.
func decodeRecorded(input io.Reader, defaultKind string, out, errs recordWriter) (decodeStats, error) {
	scanner := bufio.NewScanner(input)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var stats decodeStats
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.total++

		var recorded model.RecordedResponse
		if err := json.Unmarshal(line, &recorded); err != nil {
			stats.failed++
			writeDecodeError(errs, model.DecodeError{Line: lineNo, Error: err.Error()})
			continue
		}

		kind, err := resolveKind(recorded, defaultKind)
		if err != nil {
			stats.failed++
			writeDecodeError(errs, decodeErrorFromRecorded(lineNo, recorded, err))
			continue
		}

		normalized, err := kind.Normalize(recorded.Response)
		if err != nil {
			stats.failed++
			writeDecodeError(errs, decodeErrorFromRecorded(lineNo, recorded, err))
			continue
		}

		if err := out.Write(model.NormalizedResponse{Line: lineNo, Kind: kind.Name, Response: normalized}); err != nil {
			return stats, err
		}
		stats.decoded++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("scan input: %w", err)
	}
	return stats, nil
}

func resolveKind(recorded model.RecordedResponse, defaultKind string) (dex.Kind, error) {
	switch {
	case recorded.Kind != "":
		if k, ok := dex.LookupKind(recorded.Kind); ok {
			return k, nil
		}
		return dex.Kind{}, fmt.Errorf("unknown query kind: %s", recorded.Kind)
	case recorded.Route != "":
		if k, ok := dex.LookupRoute(recorded.Route); ok {
			return k, nil
		}
		return dex.Kind{}, fmt.Errorf("unknown route: %s", recorded.Route)
	case defaultKind != "":
		k, _ := dex.LookupKind(defaultKind)
		return k, nil
	default:
		return dex.Kind{}, fmt.Errorf("line has neither kind nor route")
	}
}

type jsonlWriter struct {
	file   *os.File
	writer *bufio.Writer
}

func newJSONLWriter(path string, appendMode bool) (*jsonlWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &jsonlWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (w *jsonlWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (w *jsonlWriter) Close() error {
	if w == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func decodeErrorFromRecorded(lineNo int, recorded model.RecordedResponse, err error) model.DecodeError {
	return model.DecodeError{
		Line:  lineNo,
		Kind:  recorded.Kind,
		Route: recorded.Route,
		Error: err.Error(),
	}
}

func writeDecodeError(writer recordWriter, errRecord model.DecodeError) {
	if writer == nil {
		return
	}
	_ = writer.Write(errRecord)
}
