package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
	filePrefix   = "file:"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// Options parameterize the built-in scenes
type Options struct {
	Width     int    // Image width, 0 keeps the scene's own
	Height    int    // Image height, 0 keeps the scene's own
	Count     int    // Shapes for "random", pairs for "dna"
	Seed      int64  // Seed for "random"
	ScenesDir string // Directory searched for "file:" IDs
}

// BuiltinScenes lists the scenes that need no file
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			Name:        "Default Scene",
			DisplayName: "Default Scene",
			Description: "Textured spheres, a mirror sphere and a cube on a checkerboard",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "random",
			Name:        "Random Shapes",
			DisplayName: "Random Shapes",
			Description: "A line of random spheres and cubes at varying depths",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "dna",
			Name:        "DNA Helix",
			DisplayName: "DNA Helix",
			Description: "Double helix of sphere pairs joined by bridges",
			Group:       builtinGroup,
			Type:        "builtin",
		},
	}
}

// Resolve maps a scene ID or a .json path to its source
func Resolve(id string, opts Options) (Source, error) {
	switch id {
	case "default", "":
		return SourceFunc(func() (*Scene, error) {
			s := NewDefaultScene()
			resize(s, opts)
			return s, nil
		}), nil

	case "random":
		width, height := sizeOr(opts, 800, 450)
		return ShapeGenerator{
			Count:  countOr(opts.Count, 10),
			Width:  width,
			Height: height,
			Seed:   opts.Seed,
		}, nil

	case "dna":
		cfg := DefaultDNAConfig()
		cfg.Width, cfg.Height = sizeOr(opts, cfg.Width, cfg.Height)
		cfg.Pairs = countOr(opts.Count, cfg.Pairs)
		return cfg, nil
	}

	var path string
	switch {
	case strings.HasPrefix(id, filePrefix):
		name := strings.TrimPrefix(id, filePrefix)
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("%q: %w", id, core.ErrUnknownScene)
		}
		path = filepath.Join(opts.ScenesDir, name+".json")
	case strings.EqualFold(filepath.Ext(id), ".json"):
		path = id
	default:
		return nil, fmt.Errorf("%q: %w", id, core.ErrUnknownScene)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%q: %w", id, core.ErrUnknownScene)
	}
	file := FileSource(path)
	return SourceFunc(func() (*Scene, error) {
		s, err := file.Build()
		if err != nil {
			return nil, err
		}
		resize(s, opts)
		return s, nil
	}), nil
}

func resize(s *Scene, opts Options) {
	if opts.Width > 0 {
		s.Width = opts.Width
	}
	if opts.Height > 0 {
		s.Height = opts.Height
	}
}

func sizeOr(opts Options, width, height int) (int, int) {
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	return width, height
}

func countOr(count, fallback int) int {
	if count > 0 {
		return count
	}
	return fallback
}

// ListSceneFiles scans dir for *.json scene files. A missing directory
// yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := parseSceneMetadata(filePath)
		if err != nil {
			core.Logger().Warn("skipping scene file", "path", filePath, "err", err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// parseSceneMetadata reads the optional name, description and group keys
func parseSceneMetadata(filePath string) (SceneInfo, error) {
	base := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(base, filepath.Ext(base))

	info := SceneInfo{
		ID:          filePrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}
	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return info, fmt.Errorf("invalid JSON: %w", err)
	}

	if meta.Name != "" {
		info.Name = meta.Name
		info.DisplayName = meta.Name
	}
	info.Description = meta.Description
	if meta.Group != "" {
		info.Group = meta.Group
	}
	return info, nil
}

// ListAllScenes returns built-in and file scenes, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltinScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "dna-helix" -> "Dna Helix"
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	// Casers keep state, so each call gets its own
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
