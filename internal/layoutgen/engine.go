package layoutgen

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/solardome/layout-gen/internal/report"
)

// Generate renders the HTML document for info. It performs no I/O.
func Generate(info *UIInfo, assets Assets, s Settings) (Result, error) {
	if err := info.Validate(); err != nil {
		return Result{}, err
	}
	positions := info.Mappings.MatrixPositions

	layers := make([]LayerLabels, 0, len(info.Mappings.MatrixLayout))
	for i, fns := range info.Mappings.MatrixLayout {
		l, err := ClassifyLayer(i, positions, fns, s.Tokens)
		if err != nil {
			return Result{}, err
		}
		layers = append(layers, l)
	}

	tpl, err := ParseTemplate(assets.Template, positions)
	if err != nil {
		return Result{}, err
	}
	missing := missingPositions(positions, tpl.Positions())
	if len(missing) > 0 {
		slog.Warn("matrix positions without a template slot", slog.Any("positions", missing))
	}

	body := renderLayers(tpl, positions, layers, s.FontSize)
	doc, err := renderDocument(info, assets, layers, body, s)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Document:  doc,
		Positions: positions,
		Layers:    layers,
		Missing:   missing,
	}, nil
}

func missingPositions(positions, slots []string) []string {
	inTemplate := make(map[string]bool, len(slots))
	for _, s := range slots {
		inTemplate[s] = true
	}
	var out []string
	for _, p := range positions {
		if !inTemplate[p] {
			out = append(out, p)
		}
	}
	return out
}

// Run loads the inputs named by cfg, renders the document and writes every
// requested artifact. Nothing is written to stdout unless rendering
// succeeded.
func Run(cfg Config) (Result, error) {
	if strings.TrimSpace(cfg.UIInfoPath) == "" {
		return Result{}, ErrMissingUIInfo
	}
	if cfg.ChecksumsPath != "" && cfg.OutPath == "" {
		return Result{}, errors.New("--checksums requires --out")
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	log, logErr := report.OpenRunLog(cfg.RunLogPath)
	if logErr != nil {
		slog.Warn("run log unavailable", slog.String("path", cfg.RunLogPath), slog.Any("err", logErr))
	}
	defer log.Close()
	log.Info("run.start", map[string]interface{}{
		"ui_info":       cfg.UIInfoPath,
		"build_scripts": cfg.BuildScriptsDir,
		"config":        cfg.ConfigPath,
		"out":           cfg.OutPath,
		"labels_json":   cfg.LabelsJSONPath,
		"checksums":     cfg.ChecksumsPath,
	})

	res, digest, err := load(cfg)
	if err != nil {
		log.Warn("run.load_inputs.error", map[string]interface{}{"error": err.Error()})
		return Result{}, err
	}
	log.Info("run.load_inputs.ok", map[string]interface{}{
		"ui_info_sha256": digest,
		"positions":      len(res.info.Mappings.MatrixPositions),
		"layers":         len(res.info.Mappings.MatrixLayout),
	})

	result, err := Generate(res.info, res.assets, res.settings)
	if err != nil {
		log.Warn("run.render.error", map[string]interface{}{"error": err.Error()})
		return Result{}, err
	}
	log.Info("run.render.ok", map[string]interface{}{
		"layers":  len(result.Layers),
		"missing": result.Missing,
		"bytes":   len(result.Document),
	})
	slog.Debug("rendered layout",
		slog.Int("layers", len(result.Layers)),
		slog.Int("positions", len(result.Positions)),
	)

	if err := writeArtifacts(cfg, &result); err != nil {
		log.Warn("run.write.error", map[string]interface{}{"error": err.Error()})
		return Result{}, err
	}
	log.Info("run.complete", map[string]interface{}{"artifacts": result.Artifacts})
	return result, nil
}

type inputs struct {
	info     *UIInfo
	assets   Assets
	settings Settings
}

func load(cfg Config) (inputs, string, error) {
	uiPath, err := absPath(cfg.UIInfoPath)
	if err != nil {
		return inputs{}, "", err
	}
	settings, err := LoadSettings(cfg.ConfigPath)
	if err != nil {
		return inputs{}, "", err
	}
	assets, err := LoadAssets(cfg.BuildScriptsDir)
	if err != nil {
		return inputs{}, "", err
	}
	info, digest, err := LoadUIInfo(uiPath)
	if err != nil {
		return inputs{}, digest, err
	}
	return inputs{info: info, assets: assets, settings: settings}, digest, nil
}

func writeArtifacts(cfg Config, result *Result) error {
	if cfg.OutPath == "" {
		if _, err := io.WriteString(cfg.Stdout, result.Document); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
	} else {
		if err := report.WriteFile(cfg.OutPath, []byte(result.Document)); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		result.Artifacts = append(result.Artifacts, cfg.OutPath)
	}
	if cfg.LabelsJSONPath != "" {
		if err := report.WriteJSON(cfg.LabelsJSONPath, result); err != nil {
			return fmt.Errorf("write labels: %w", err)
		}
		result.Artifacts = append(result.Artifacts, cfg.LabelsJSONPath)
	}
	if cfg.ChecksumsPath != "" {
		if err := report.WriteChecksums(cfg.ChecksumsPath, result.Artifacts); err != nil {
			return err
		}
	}
	return nil
}
