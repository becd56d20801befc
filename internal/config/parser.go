package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/easel/internal/palette"
	"github.com/example/easel/internal/tools"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTool *tools.Type

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTool = nil

			if strings.HasPrefix(currentSection, "tool.") {
				t, err := tools.ParseType(strings.TrimPrefix(currentSection, "tool."))
				if err != nil {
					return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
				}
				currentTool = &t
				if _, ok := cfg.Tools[t]; !ok {
					cfg.Tools[t] = tools.DefaultSettings()
				}
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch {
		case currentTool != nil:
			s := cfg.Tools[*currentTool]
			if err := setToolField(&s, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
			cfg.Tools[*currentTool] = s
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "default_tool":
		t, err := tools.ParseType(value)
		if err != nil {
			return err
		}
		cfg.DefaultTool = t
	case "color":
		c, err := palette.Parse(value)
		if err != nil {
			return err
		}
		cfg.Color = c
	case "save_dir":
		cfg.SaveDir = value
	case "state_db":
		cfg.StateDB = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "load":
		n.Load = b
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func setToolField(s *tools.Settings, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		w, err := strconv.Atoi(value)
		if err != nil || w < 1 || w > tools.MaxWidth {
			return fmt.Errorf("invalid width %q", value)
		}
		s.Width = w
	case "tolerance":
		v, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid tolerance for key %s: %w", key, err)
		}
		s.Tolerance = uint8(v)
	case "text_size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid text_size %q", value)
		}
		s.TextSize = v
	case "shape":
		kind := tools.ShapeKind(strings.ToLower(value))
		if kind != tools.ShapeRect && kind != tools.ShapeEllipse {
			return fmt.Errorf("invalid shape %q", value)
		}
		s.Shape = kind
	case "filled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		s.Filled = b
	}
	return nil
}
