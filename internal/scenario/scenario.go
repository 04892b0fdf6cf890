package scenario

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/fsutil"
	"github.com/orrery-sim/orrery/internal/model"
)

// Scenario is the decoded, merged, validated run definition.
type Scenario struct {
	StartYear  int `validate:"required"`
	EndYear    int `validate:"required,gtefield=StartYear"`
	TrackReads bool

	Lags   map[string]model.Lag
	Params map[string]model.Params
}

// hclScenarioFile mirrors the top-level structure of one scenario file.
type hclScenarioFile struct {
	Run    *hclRunBlock      `hcl:"run,block"`
	Lags   []*hclLagBlock    `hcl:"lag,block"`
	Params []*hclParamsBlock `hcl:"params,block"`
}

type hclRunBlock struct {
	StartYear  int  `hcl:"start_year"`
	EndYear    int  `hcl:"end_year"`
	TrackReads bool `hcl:"track_reads,optional"`
}

type hclLagBlock struct {
	Name    string  `hcl:"name,label"`
	Source  string  `hcl:"source"`
	Delay   int     `hcl:"delay"`
	Initial float64 `hcl:"initial"`
}

type hclParamsBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Load discovers every .hcl file under path (or accepts a single file),
// merges their blocks, and validates the result. Exactly one run block must
// appear across the whole set; lag and params labels must be unique.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find scenario files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl scenario files found at %s", path)
	}

	scn := &Scenario{
		Lags:   make(map[string]model.Lag),
		Params: make(map[string]model.Params),
	}
	parser := hclparse.NewParser()
	runSeen := ""

	for _, file := range files {
		parsed, err := decodeFile(parser, file)
		if err != nil {
			return nil, err
		}

		if parsed.Run != nil {
			if runSeen != "" {
				return nil, fmt.Errorf("duplicate run block: declared in both %s and %s", runSeen, file)
			}
			runSeen = file
			scn.StartYear = parsed.Run.StartYear
			scn.EndYear = parsed.Run.EndYear
			scn.TrackReads = parsed.Run.TrackReads
		}

		for _, lag := range parsed.Lags {
			if _, ok := scn.Lags[lag.Name]; ok {
				return nil, fmt.Errorf("duplicate lag %q in %s", lag.Name, file)
			}
			scn.Lags[lag.Name] = model.Lag{
				Source:  lag.Source,
				Delay:   lag.Delay,
				Initial: lag.Initial,
			}
		}

		for _, block := range parsed.Params {
			if _, ok := scn.Params[block.Name]; ok {
				return nil, fmt.Errorf("duplicate params block for module %q in %s", block.Name, file)
			}
			params, err := decodeParams(block.Body, file, block.Name)
			if err != nil {
				return nil, err
			}
			scn.Params[block.Name] = params
		}
	}

	if runSeen == "" {
		return nil, fmt.Errorf("scenario at %s has no run block", path)
	}
	if err := validator.New().Struct(scn); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger.Debug("Scenario loaded.",
		"files", len(files), "lag_count", len(scn.Lags), "params_blocks", len(scn.Params),
		"start_year", scn.StartYear, "end_year", scn.EndYear)
	return scn, nil
}

func decodeFile(parser *hclparse.Parser, filePath string) (*hclScenarioFile, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", filePath, diags)
	}

	var parsed hclScenarioFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario file %s: %w", filePath, diags)
	}
	return &parsed, nil
}

// decodeParams evaluates every attribute of a params block as a literal and
// converts it to a plain Go value for the module's parameter merge.
func decodeParams(body hcl.Body, file, moduleName string) (model.Params, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("params %q in %s: %w", moduleName, file, diags)
	}

	params := make(model.Params, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("params %q in %s: attribute %q: %w", moduleName, file, name, diags)
		}
		converted, err := ctyToGo(value)
		if err != nil {
			return nil, fmt.Errorf("params %q in %s: attribute %q: %w", moduleName, file, name, err)
		}
		params[name] = converted
	}
	return params, nil
}
