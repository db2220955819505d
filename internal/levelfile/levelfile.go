// Package levelfile is the serialized boundary for levels: a YAML
// document format with an embedded CUE schema. Decode validates the
// document against the schema before building a grid.Level, so a file
// that decodes is structurally sound; semantic checks (positions inside
// the grid, goals naming node tiles) run after.
package levelfile

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/flowgrid/internal/grid"
)

//go:embed schema.cue
var schemaSource string

// Error codes for level file failures.
const (
	ErrCodeReadFailed  = "LEVEL_READ_FAILED"
	ErrCodeBadYAML     = "LEVEL_BAD_YAML"
	ErrCodeSchema      = "LEVEL_SCHEMA_VIOLATION"
	ErrCodeSemantic    = "LEVEL_SEMANTIC"
	ErrCodeWriteFailed = "LEVEL_WRITE_FAILED"
)

// FileError is a level file failure with a stable code.
type FileError struct {
	Code    string
	Message string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// levelDoc is the YAML shape of a level.
type levelDoc struct {
	ID                 string        `yaml:"id"`
	Name               string        `yaml:"name"`
	Tier               int           `yaml:"tier"`
	GridSize           int           `yaml:"grid_size"`
	Tiles              []tileDoc     `yaml:"tiles"`
	Goals              []positionDoc `yaml:"goals"`
	CompressionDelayMS int           `yaml:"compression_delay_ms"`
	MaxMoves           int           `yaml:"max_moves"`
	Solution           []moveDoc     `yaml:"solution,omitempty"`
	Generated          bool          `yaml:"generated,omitempty"`
}

type tileDoc struct {
	ID        string   `yaml:"id"`
	Kind      string   `yaml:"kind"`
	X         int      `yaml:"x"`
	Y         int      `yaml:"y"`
	Conns     []string `yaml:"conns"`
	Goal      bool     `yaml:"goal,omitempty"`
	Rotatable bool     `yaml:"rotatable,omitempty"`
}

type positionDoc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type moveDoc struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Steps int `yaml:"steps"`
}

// Decode parses and validates a YAML level document.
func Decode(data []byte) (*grid.Level, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FileError{Code: ErrCodeBadYAML, Message: err.Error()}
	}
	return doc.toLevel()
}

// Encode serializes a level in the canonical document order: tiles
// sorted row-major, connection lists in Up/Right/Down/Left order. Two
// equal levels encode to identical bytes.
func Encode(level *grid.Level) ([]byte, error) {
	doc := levelDoc{
		ID:                 level.ID,
		Name:               level.Name,
		Tier:               level.Tier,
		GridSize:           level.GridSize,
		CompressionDelayMS: int(level.CompressionDelay / time.Millisecond),
		MaxMoves:           level.MaxMoves,
		Generated:          level.Generated,
	}

	tiles := grid.CloneTiles(level.Tiles)
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Pos.Y != tiles[j].Pos.Y {
			return tiles[i].Pos.Y < tiles[j].Pos.Y
		}
		return tiles[i].Pos.X < tiles[j].Pos.X
	})
	for _, t := range tiles {
		td := tileDoc{
			ID:        t.ID,
			Kind:      t.Kind.String(),
			X:         t.Pos.X,
			Y:         t.Pos.Y,
			Goal:      t.Goal,
			Rotatable: t.Rotatable,
		}
		for _, d := range t.Conns.List() {
			td.Conns = append(td.Conns, d.String())
		}
		doc.Tiles = append(doc.Tiles, td)
	}

	for _, g := range level.Goals {
		doc.Goals = append(doc.Goals, positionDoc{X: g.X, Y: g.Y})
	}
	if level.Solution != nil {
		for _, m := range level.Solution.Moves {
			doc.Solution = append(doc.Solution, moveDoc{X: m.Pos.X, Y: m.Pos.Y, Steps: m.Steps})
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, &FileError{Code: ErrCodeWriteFailed, Message: err.Error()}
	}
	return out, nil
}

// Load reads and decodes a level file.
func Load(path string) (*grid.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Code: ErrCodeReadFailed, Message: err.Error()}
	}
	lvl, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// Save encodes a level and writes it to path.
func Save(path string, level *grid.Level) error {
	data, err := Encode(level)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileError{Code: ErrCodeWriteFailed, Message: err.Error()}
	}
	return nil
}

// validateSchema unifies the YAML document with #Level.
func validateSchema(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource)
	if err := schema.Err(); err != nil {
		return &FileError{Code: ErrCodeSchema, Message: fmt.Sprintf("compiling schema: %v", err)}
	}

	file, err := cueyaml.Extract("level.yaml", data)
	if err != nil {
		return &FileError{Code: ErrCodeBadYAML, Message: err.Error()}
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return &FileError{Code: ErrCodeBadYAML, Message: err.Error()}
	}

	unified := schema.LookupPath(cue.ParsePath("#Level")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &FileError{Code: ErrCodeSchema, Message: err.Error()}
	}
	return nil
}

func (doc *levelDoc) toLevel() (*grid.Level, error) {
	level := &grid.Level{
		ID:               doc.ID,
		Name:             doc.Name,
		Tier:             doc.Tier,
		GridSize:         doc.GridSize,
		CompressionDelay: time.Duration(doc.CompressionDelayMS) * time.Millisecond,
		MaxMoves:         doc.MaxMoves,
		Generated:        doc.Generated,
	}

	seen := make(map[grid.Position]string, len(doc.Tiles))
	for _, td := range doc.Tiles {
		kind, err := grid.ParseKind(td.Kind)
		if err != nil {
			return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("tile %q: %v", td.ID, err)}
		}
		pos := grid.Position{X: td.X, Y: td.Y}
		if pos.X >= doc.GridSize || pos.Y >= doc.GridSize {
			return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("tile %q at (%d,%d) outside %dx%d grid", td.ID, pos.X, pos.Y, doc.GridSize, doc.GridSize)}
		}
		if prev, dup := seen[pos]; dup {
			return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("tiles %q and %q share cell (%d,%d)", prev, td.ID, pos.X, pos.Y)}
		}
		seen[pos] = td.ID

		var dirs []grid.Direction
		for _, name := range td.Conns {
			d, err := grid.ParseDirection(name)
			if err != nil {
				return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("tile %q: %v", td.ID, err)}
			}
			dirs = append(dirs, d)
		}
		conns := grid.Conns(dirs...)
		if (kind == grid.KindWall || kind == grid.KindCrushed) && (conns != 0 || td.Rotatable) {
			return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("tile %q: %s tiles carry no connections and cannot rotate", td.ID, kind)}
		}

		level.Tiles = append(level.Tiles, grid.Tile{
			ID:        td.ID,
			Kind:      kind,
			Pos:       pos,
			Conns:     conns,
			Goal:      td.Goal,
			Rotatable: td.Rotatable,
		})
	}

	index := grid.IndexByPosition(level.Tiles)
	for _, g := range doc.Goals {
		pos := grid.Position{X: g.X, Y: g.Y}
		i, ok := index[pos]
		if !ok || level.Tiles[i].Kind != grid.KindNode || !level.Tiles[i].Goal {
			return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("goal (%d,%d) does not name a goal node tile", pos.X, pos.Y)}
		}
		level.Goals = append(level.Goals, pos)
	}

	for _, m := range doc.Solution {
		pos := grid.Position{X: m.X, Y: m.Y}
		i, ok := index[pos]
		if !ok || !level.Tiles[i].Rotatable {
			return nil, &FileError{Code: ErrCodeSemantic, Message: fmt.Sprintf("solution move at (%d,%d) does not name a rotatable tile", pos.X, pos.Y)}
		}
		if level.Solution == nil {
			level.Solution = &grid.Solution{}
		}
		level.Solution.Moves = append(level.Solution.Moves, grid.Move{Pos: pos, Steps: m.Steps})
	}

	return level, nil
}
