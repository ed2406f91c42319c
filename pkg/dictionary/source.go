package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/gomschap/pkg/log"
)

// File is the layout of a dictionary file on disk.
//
//	attributes:
//	  - id: 1
//	    name: User-Name
//	    data_type: string
//	vendors:
//	  - id: 311
//	    name: Microsoft
//	    attributes:
//	      - id: 26
//	        name: MS-CHAP2-Success
//	        data_type: octets
type File struct {
	Attributes []*AttributeDefinition `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Vendors    []*VendorDefinition    `yaml:"vendors,omitempty" json:"vendors,omitempty"`
}

// Source produces a dictionary
type Source interface {
	Load(ctx context.Context) (*Dictionary, error)
}

// FileSource loads dictionaries from local files (YAML or JSON)
type FileSource struct {
	// Path specifies a single file path to load
	Path string

	// Paths specifies multiple file paths to load and merge
	Paths []string

	// Dir specifies a directory to scan for dictionary files
	Dir string

	// Format specifies the file format ("yaml", "json", or "auto")
	Format string

	// Base receives the loaded definitions when set; otherwise a new
	// dictionary is created. Base is only modified when every file loads
	// and merges cleanly.
	Base *Dictionary

	// Logger traces loaded files; nil disables logging.
	Logger log.Logger
}

// Load loads the dictionary from file(s)
func (fs *FileSource) Load(ctx context.Context) (*Dictionary, error) {
	logger := fs.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	var filePaths []string

	if fs.Path != "" {
		filePaths = append(filePaths, fs.Path)
	}

	if len(fs.Paths) > 0 {
		filePaths = append(filePaths, fs.Paths...)
	}

	if fs.Dir != "" {
		dirFiles, err := fs.scanDirectory(fs.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", fs.Dir, err)
		}
		filePaths = append(filePaths, dirFiles...)
	}

	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no files specified to load")
	}

	// Files are combined in a scratch dictionary so a failing file leaves Base untouched.
	dict := New()

	for _, path := range filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := fs.loadSingleFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", path, err)
		}

		if len(file.Attributes) > 0 {
			if err := dict.AddStandardAttributes(file.Attributes); err != nil {
				return nil, fmt.Errorf("failed to merge attributes from %s: %w", path, err)
			}
		}

		for _, vendor := range file.Vendors {
			if err := dict.AddVendor(vendor); err != nil {
				return nil, fmt.Errorf("failed to merge vendor from %s: %w", path, err)
			}
		}

		logger.WithField("file", path).Debugf("loaded %d attributes and %d vendors", len(file.Attributes), len(file.Vendors))
	}

	if fs.Base == nil {
		return dict, nil
	}

	if err := fs.Base.Merge(dict); err != nil {
		return nil, fmt.Errorf("failed to merge into base dictionary: %w", err)
	}
	return fs.Base, nil
}

func (fs *FileSource) scanDirectory(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" || ext == ".json" {
			files = append(files, path)
		}

		return nil
	})

	sort.Strings(files)

	return files, err
}

func (fs *FileSource) loadSingleFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := fs.Format
	if format == "" || format == "auto" {
		format = detectFormat(path, data)
	}

	var file File
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &file, nil
}

func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "{") {
			return "json"
		}
		return "yaml"
	}
}
