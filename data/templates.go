package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalogFromDirectory builds a catalog from one file per room role.
// The file name without extension is the role key, e.g. "treasure.yaml" or
// "shop.json". Files with other extensions are ignored.
func LoadCatalogFromDirectory(dirPath string) (*RoomCatalog, error) {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	catalog := NewRoomCatalog()

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		role := strings.TrimSuffix(file.Name(), ext)

		content, err := loadRoomContent(filepath.Join(dirPath, file.Name()), ext)
		if err != nil {
			return nil, fmt.Errorf("failed to load room content from %s: %w", file.Name(), err)
		}
		if content == nil {
			continue
		}

		if _, dup := catalog.Rooms[role]; dup {
			return nil, fmt.Errorf("%w: role %q defined twice in %s", ErrInvalidCatalog, role, dirPath)
		}
		catalog.Rooms[role] = content
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", dirPath, err)
	}

	return catalog, nil
}

// loadRoomContent reads a single role file. Unknown extensions yield nil.
func loadRoomContent(filePath, ext string) (*RoomContent, error) {
	var unmarshal func([]byte, any) error
	switch ext {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, nil
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var content RoomContent
	if err := unmarshal(raw, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// LoadCatalog loads a catalog from a single file or from a directory of
// per-role files
func LoadCatalog(path string) (*RoomCatalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if info.IsDir() {
		return LoadCatalogFromDirectory(path)
	}
	return LoadCatalogFromFile(path)
}
