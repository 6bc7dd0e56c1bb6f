package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

const (
	StandingsFile = "standings.json"
	BoardFile     = "board.json"
)

// Sink writes each season as JSON files under <dir>/<game_id>/.
type Sink struct {
	dir    string
	logger *logging.Logger
}

func NewSink(dir string, logger *logging.Logger) (*Sink, error) {
	if dir == "" {
		return nil, fmt.Errorf("export dir is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Sink{dir: dir, logger: logger}, nil
}

// Standings adapts the sink to standings.Repository.
func (s *Sink) Standings() *StandingsWriter {
	return &StandingsWriter{sink: s}
}

// Board adapts the sink to postseason.Repository.
func (s *Sink) Board() *BoardWriter {
	return &BoardWriter{sink: s}
}

// Path is where file of gameID is written.
func (s *Sink) Path(gameID int64, file string) string {
	return filepath.Join(s.dir, strconv.FormatInt(gameID, 10), file)
}

type StandingsWriter struct {
	sink *Sink
}

func (w *StandingsWriter) ReplaceByGame(ctx context.Context, gameID int64, rows []standings.Row) error {
	records := make([]standingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, newStandingRecord(row))
	}
	return w.sink.write(ctx, gameID, StandingsFile, records)
}

type BoardWriter struct {
	sink *Sink
}

func (w *BoardWriter) ReplaceByGame(ctx context.Context, gameID int64, rows []postseason.BoardRow) error {
	records := make([]boardRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, newBoardRecord(row))
	}
	return w.sink.write(ctx, gameID, BoardFile, records)
}

// write replaces the file atomically: encode into a pooled buffer, write a
// temp file next to the target, then rename over it.
func (s *Sink) write(ctx context.Context, gameID int64, file string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return fmt.Errorf("encode %s game_id=%d: %w", file, gameID, err)
	}

	target := s.Path(gameID, file)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+file+"-*")
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replace %s: %w", target, err)
	}

	s.logger.DebugContext(ctx, "export written", "game_id", gameID, "file", target, "bytes", buf.Len())
	return nil
}
