package tft

import (
	"log"
	"regexp"
	"tftstats/pkg/regions"
	queuevalues "tftstats/pkg/riotvalues/queue"
)

// Logger receives the non fatal parse diagnostics.
type Logger interface {
	Infof(format string, args ...any)
}

// Expected shape: Version 11.6.365.1420 (Mar 17 2021/12:30:16) [PUBLIC].
var patchPattern = regexp.MustCompile(`Version (\d+\.\d+)\.`)

// ParserConfig holds the fixed tables used on derivations.
type ParserConfig struct {
	RankedQueueID int
	// First submatch is the patch.
	PatchPattern *regexp.Regexp
	Routes       regions.Table
	Logger       Logger
}

// Parser turns raw match mappings into matches.
// Safe for concurrent use.
type Parser struct {
	cfg ParserConfig
}

type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

var defaultParser = NewParser(DefaultParserConfig())

// DefaultParserConfig returns the current Riot values.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		RankedQueueID: queuevalues.RankedQueueID,
		PatchPattern:  patchPattern,
		Routes:        regions.DefaultTable,
		Logger:        stdLogger{},
	}
}

// NewParser creates a parser, missing values are taken from the default config.
func NewParser(cfg ParserConfig) *Parser {
	defaults := DefaultParserConfig()
	if cfg.RankedQueueID == 0 {
		cfg.RankedQueueID = defaults.RankedQueueID
	}
	if cfg.PatchPattern == nil {
		cfg.PatchPattern = defaults.PatchPattern
	}
	if cfg.Routes == nil {
		cfg.Routes = defaults.Routes
	}
	if cfg.Logger == nil {
		cfg.Logger = defaults.Logger
	}
	return &Parser{cfg: cfg}
}

func (p *Parser) derivePatch(gameVersion string) (string, error) {
	match := p.cfg.PatchPattern.FindStringSubmatch(gameVersion)
	if len(match) < 2 {
		return "", &DerivationError{Field: "patch", Input: gameVersion}
	}
	return match[1], nil
}
