package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/fsutil"
)

// Load discovers manifest files under paths and decodes them with the loader
// matching each file's extension. When several loaders claim overlapping
// suffixes the longest suffix wins.
func Load(ctx context.Context, loaders []Loader, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loading started.", "path_count", len(paths), "loader_count", len(loaders))

	if len(loaders) == 0 {
		return nil, fmt.Errorf("no manifest loaders configured")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no manifest paths given")
	}

	bySuffix := make(map[string]Loader)
	var suffixes []string
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			if _, taken := bySuffix[ext]; !taken {
				suffixes = append(suffixes, ext)
			}
			bySuffix[ext] = l
		}
	}
	// Longest suffix first so ".module.hcl" is tried before ".hcl".
	sort.SliceStable(suffixes, func(i, j int) bool { return len(suffixes[i]) > len(suffixes[j]) })

	model := &Model{}
	seen := make(map[string]struct{})
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error accessing manifest path %s: %w", path, err)
		}
		files, err := fsutil.FindFilesByExtension(path, suffixes...)
		if err != nil {
			return nil, fmt.Errorf("failed to walk manifest path %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No manifest files found in path.", "path", path)
		}

		for _, file := range files {
			if _, dup := seen[file]; dup {
				continue
			}
			seen[file] = struct{}{}

			loader := loaderFor(file, suffixes, bySuffix)
			manifests, err := loader.LoadFile(ctx, file)
			if err != nil {
				return nil, err
			}
			model.Manifests = append(model.Manifests, manifests...)
			model.Files = append(model.Files, file)
			logger.Debug("Loaded manifest file.", "file", file, "modules", len(manifests))
		}
	}

	logger.Debug("Manifest loading complete.", "files", len(model.Files), "modules", len(model.Manifests))
	return model, nil
}

func loaderFor(file string, suffixes []string, bySuffix map[string]Loader) Loader {
	for _, ext := range suffixes {
		if strings.HasSuffix(file, ext) {
			return bySuffix[ext]
		}
	}
	// Unreachable: fsutil only returns files matching one of the suffixes.
	panic(fmt.Sprintf("no loader for %s", file))
}
