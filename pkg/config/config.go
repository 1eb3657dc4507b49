package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	v1 "github.com/djcass44/debdeps/pkg/api/v1"
	"github.com/drone/envsubst"
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// Read loads and validates the configuration file at path.
// Any warnings are returned alongside a valid configuration.
func Read(ctx context.Context, path string) (*v1.Config, []string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, &FileError{Path: path, Err: ErrNotFound}
		}
		log.Error(err, "failed to read configuration file")
		return nil, nil, &FileError{Path: path, Err: err}
	}

	raw, err := decode(data)
	if err != nil {
		log.V(1).Info("failed to decode configuration file", "err", err.Error())
		return nil, nil, &FileError{Path: path, Err: ErrInvalidFormat}
	}

	cfg, warnings, err := Validate(raw)
	if err != nil {
		return nil, warnings, err
	}
	log.V(1).Info("loaded configuration",
		KeyPackageName, cfg.PackageName,
		KeyRepoURLOrPath, cfg.RepoURLOrPath,
		KeyRepoMode, cfg.RepoMode,
		KeyGraphFileName, cfg.GraphFileName,
		KeyASCIITreeMode, cfg.ASCIITreeMode,
		KeyFilterSubstring, cfg.FilterSubstring,
	)
	return cfg, warnings, nil
}

// Validate checks a decoded configuration. Missing keys are reported
// before anything else; otherwise every invalid value is collected
// into a single ValidationError.
func Validate(raw map[string]any) (*v1.Config, []string, error) {
	var missing []string
	for _, k := range RequiredKeys {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &MissingKeysError{Keys: missing}
	}

	var problems, warnings []string
	cfg := &v1.Config{}

	if s, ok := raw[KeyPackageName].(string); !ok || strings.TrimSpace(s) == "" {
		problems = append(problems, "package_name must be a non-empty string.")
	} else {
		cfg.PackageName = s
	}

	// references are expanded first so that an unset
	// variable can't produce an empty location
	if s, ok := raw[KeyRepoURLOrPath].(string); !ok || strings.TrimSpace(expandEnv(s)) == "" {
		problems = append(problems, "repo_url_or_path must be a non-empty string.")
	} else {
		cfg.RepoURLOrPath = expandEnv(s)
	}

	s, _ := raw[KeyRepoMode].(string)
	if mode := v1.RepoMode(strings.ToLower(s)); mode == v1.RepoModeURL || mode == v1.RepoModeFile {
		cfg.RepoMode = mode
	} else {
		problems = append(problems, "repo_mode must be either 'url' or 'file'.")
	}

	if s, ok := raw[KeyGraphFileName].(string); !ok || strings.TrimSpace(s) == "" {
		problems = append(problems, "graph_file_name must be a non-empty string.")
	} else {
		cfg.GraphFileName = s
		if !hasGraphExtension(s) {
			warnings = append(warnings, "graph_file_name should end with a valid image extension (e.g., .png, .jpg, .svg).")
		}
	}

	if b, ok := raw[KeyASCIITreeMode].(bool); !ok {
		problems = append(problems, "ascii_tree_mode must be a boolean (true/false).")
	} else {
		cfg.ASCIITreeMode = b
	}

	if s, ok := raw[KeyFilterSubstring].(string); !ok {
		problems = append(problems, "filter_substring must be a string.")
	} else {
		cfg.FilterSubstring = s
	}

	if len(problems) > 0 {
		return nil, warnings, &ValidationError{Problems: problems}
	}
	return cfg, warnings, nil
}

// decode reads exactly one JSON (or YAML) object. Anything
// other than whitespace after it is rejected.
func decode(data []byte) (map[string]any, error) {
	dec := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(data), 4)

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	// an empty document or a literal null decodes cleanly
	if raw == nil {
		return nil, errors.New("configuration is not an object")
	}
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after configuration object: %v", err)
	}
	return raw, nil
}

func hasGraphExtension(s string) bool {
	s = strings.ToLower(s)
	for _, ext := range graphExtensions {
		if strings.HasSuffix(s, ext) {
			return true
		}
	}
	return false
}

// expandEnv substitutes ${VAR} references. Values that
// fail to parse are returned untouched.
func expandEnv(s string) string {
	val, err := envsubst.EvalEnv(s)
	if err != nil {
		return s
	}
	return val
}
