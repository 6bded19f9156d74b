package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/tilegrid/internal/config"
	"github.com/specialistvlad/tilegrid/internal/ctxlog"
	"github.com/specialistvlad/tilegrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges the devices
// and the optional catalog they declare. Devices are returned sorted by name.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Devices {
			device, err := l.translateDevice(block, file)
			if err != nil {
				return nil, err
			}
			if err := model.Add(device); err != nil {
				return nil, err
			}
			logger.Debug("Device translated.", "device", block.Name, "file", file)
		}
		if root.Catalog != nil {
			if model.Catalog != nil {
				return nil, fmt.Errorf("catalog declared twice (%s and %s)", model.Catalog.Source, file)
			}
			model.Catalog = &config.Catalog{
				Nodes:   root.Catalog.Nodes,
				Namings: root.Catalog.Namings,
				Source:  file,
			}
		}
	}

	model.Sort()
	logger.Debug("HCL loading complete.", "files", len(files), "devices", len(model.Devices), "catalog", model.Catalog != nil)
	return model, nil
}
