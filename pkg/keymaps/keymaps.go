package keymaps

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":            {"?", "show/hide commands"},
	"QuitApp":             {"q", "quit"},
	"AddIdea":             {"a", "add idea"},
	"EditIdea":            {"e", "edit idea"},
	"DeleteIdea":          {"d", "delete idea"},
	"ViewIdea":            {"enter", "view idea details"},
	"UndoDelete":          {"u", "undo last delete"},
	"SearchIdeas":         {"/,ctrl+f", "search titles and descriptions"},
	"CyclePriorityFilter": {"p", "cycle priority filter"},
	"CycleCategoryFilter": {"c", "cycle category filter"},
	"CycleStatusFilter":   {"s", "cycle status filter"},
	"ClearFilters":        {"x", "clear all filters"},
	"ExportIdeas":         {"ctrl+e", "export visible ideas"},
}

type KeyMap struct {
	ShowHelp            key.Binding
	QuitApp             key.Binding
	AddIdea             key.Binding
	EditIdea            key.Binding
	DeleteIdea          key.Binding
	ViewIdea            key.Binding
	UndoDelete          key.Binding
	SearchIdeas         key.Binding
	CyclePriorityFilter key.Binding
	CycleCategoryFilter key.Binding
	CycleStatusFilter   key.Binding
	ClearFilters        key.Binding
	ExportIdeas         key.Binding
}

// bindings maps action names to the KeyMap fields they populate
func (km *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"ShowHelp":            &km.ShowHelp,
		"QuitApp":             &km.QuitApp,
		"AddIdea":             &km.AddIdea,
		"EditIdea":            &km.EditIdea,
		"DeleteIdea":          &km.DeleteIdea,
		"ViewIdea":            &km.ViewIdea,
		"UndoDelete":          &km.UndoDelete,
		"SearchIdeas":         &km.SearchIdeas,
		"CyclePriorityFilter": &km.CyclePriorityFilter,
		"CycleCategoryFilter": &km.CycleCategoryFilter,
		"CycleStatusFilter":   &km.CycleStatusFilter,
		"ClearFilters":        &km.ClearFilters,
		"ExportIdeas":         &km.ExportIdeas,
	}
}

// BuildKeyMap applies config overrides on top of the default keys.
// Unknown action names are ignored.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	fields := km.bindings()
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := lookupOverride(configOverrides, action); exists && override != "" {
			keyStr = override
		}
		if field, ok := fields[action]; ok {
			*field = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

// lookupOverride finds an override by action name. Config keys may come back
// lowercased from viper, so the match is case-insensitive.
func lookupOverride(overrides map[string]string, action string) (string, bool) {
	if v, ok := overrides[action]; ok {
		return v, true
	}
	for k, v := range overrides {
		if strings.EqualFold(k, action) {
			return v, true
		}
	}
	return "", false
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}

// Actions returns the action names in a stable order
func Actions() []string {
	actions := make([]string, 0, len(KeyDefinitions))
	for action := range KeyDefinitions {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// Binding returns the binding for an action name
func (km KeyMap) Binding(action string) (key.Binding, bool) {
	b, ok := km.bindings()[action]
	if !ok {
		return key.Binding{}, false
	}
	return *b, true
}
