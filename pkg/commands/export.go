package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ideatracker/pkg/ideas"
)

// Formats lists the supported export formats
var Formats = []string{"json", "yaml", "txt"}

// Export writes items to w in the given format (json, yaml or txt)
func Export(w io.Writer, items []ideas.Idea, format string) error {
	if items == nil {
		items = []ideas.Idea{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)

	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()

	case "txt":
		_, err := io.WriteString(w, renderText(items))
		return err

	default:
		return fmt.Errorf("unknown export type: %s", format)
	}
}

// ExportFile writes items into a timestamped file under dir and returns its path
func ExportFile(dir string, items []ideas.Idea, format string, now time.Time) (string, error) {
	ext := format
	if ext == "yml" {
		ext = "yaml"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("ideas-%s.%s", now.Format("20060102-150405"), ext))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}

	if err := Export(f, items, format); err != nil {
		f.Close()
		os.Remove(filename)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filename, nil
}

// renderText groups ideas by category as a plain checklist
func renderText(items []ideas.Idea) string {
	groups := make(map[string][]ideas.Idea)
	var order []string
	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = "Uncategorized"
		}
		if _, ok := groups[category]; !ok {
			order = append(order, category)
		}
		groups[category] = append(groups[category], item)
	}

	var lines []string
	for _, category := range order {
		lines = append(lines, fmt.Sprintf("\n%s:", category))
		for _, item := range groups[category] {
			mark := " "
			if item.Status == ideas.StatusCompleted {
				mark = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s (%s, %s)", mark, item.Title, item.Priority, item.Status))
			if item.Description != "" {
				lines = append(lines, "      "+item.Description)
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
