package controllers

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"lorraxs/whiten/config"
	"lorraxs/whiten/services"
	"lorraxs/whiten/structs"
)

type RecolorController struct {
	Config    *config.Config
	Recolorer *services.Recolorer
	Out       *log.Logger
	Err       *log.Logger
}

func NewRecolorController(stdout, stderr io.Writer, cfg *config.Config) *RecolorController {
	level := log.InfoLevel
	if l, err := log.ParseLevel(cfg.Log.Level); err == nil && l < level {
		level = l
	}
	opts := log.Options{Prefix: "whiten", Level: level}
	return &RecolorController{
		Config:    cfg,
		Recolorer: services.NewRecolorer(cfg),
		Out:       log.NewWithOptions(stdout, opts),
		Err:       log.NewWithOptions(stderr, opts),
	}
}

// Run processes paths one after another. A bad path never stops the batch;
// every outcome is logged and returned in input order.
func (c *RecolorController) Run(paths []string) []structs.Result {
	results := make([]structs.Result, 0, len(paths))
	for _, path := range paths {
		result := c.process(path)
		c.report(result)
		results = append(results, result)
	}
	return results
}

func (c *RecolorController) process(path string) structs.Result {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return structs.Result{Path: path, Kind: structs.ResultNotAFile, Err: err}
	}
	return c.Recolorer.Recolor(path)
}

func (c *RecolorController) report(result structs.Result) {
	switch result.Kind {
	case structs.ResultOK:
		c.Out.Info("Processed", "path", result.Path)
		c.Out.Debug("Recolored image", "path", result.Path, "format", result.Format,
			"width", result.Width, "height", result.Height)
	case structs.ResultNotAFile:
		c.Err.Warn("Skipping (not a file)", "path", result.Path)
	case structs.ResultProcessingError:
		c.Err.Error("Error processing", "path", result.Path, "err", result.Err)
	}
}
