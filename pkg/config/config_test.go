package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// TestDefault 测试默认值
func TestDefault(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		var inspect Inspect
		var conf Config
		conf.Parse(&inspect, EnvPrefix)
		if inspect.Format != "text" || !inspect.Color || inspect.LogSize != 1048576 || inspect.LogFiles != 7 {
			t.Errorf("defaults not applied: %+v", inspect)
		}
		if inspect.DB != "" || inspect.OnlyBoxes != nil {
			t.Errorf("unexpected values: %+v", inspect)
		}
		if !conf.Has("onlyboxes") || !conf.Has("DSN") {
			t.Error("missing properties")
		}
	})
}

// TestUserFile 测试配置文件覆盖默认值
func TestUserFile(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		var inspect Inspect
		var conf Config
		conf.Parse(&inspect, EnvPrefix)
		conf.ParseUserFile(map[string]any{
			"onlyboxes": []any{"moof", "trun"},
			"ShowAll":   true,
			"logsize":   2048,
			"unknown":   1,
		})
		if !slices.Equal(inspect.OnlyBoxes, []string{"moof", "trun"}) || !inspect.ShowAll || inspect.LogSize != 2048 {
			t.Errorf("file not applied: %+v", inspect)
		}
		if m := conf.GetMap(); m["showall"] != true || m["format"] != "text" {
			t.Errorf("unexpected map %v", m)
		}
	})
}

// TestEnv 测试环境变量优先于配置文件
func TestEnv(t *testing.T) {
	t.Setenv("INSPECT_FORMAT", "yaml")
	t.Setenv("INSPECT_ONLYBOXES", "[mdat]")
	var inspect Inspect
	var conf Config
	conf.Parse(&inspect, EnvPrefix)
	conf.ParseUserFile(map[string]any{"format": "text", "onlyboxes": []any{"moov"}})
	if inspect.Format != "yaml" || !slices.Equal(inspect.OnlyBoxes, []string{"mdat"}) {
		t.Errorf("environment lost: %+v", inspect)
	}
}

func TestLoad(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("format: yaml\ndb: sqlite\ndsn: \"file::memory:\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		var inspect Inspect
		if _, err := Load(&inspect, path); err != nil {
			t.Fatal(err)
		}
		if inspect.Format != "yaml" || inspect.DB != "sqlite" || inspect.DSN != "file::memory:" {
			t.Errorf("file not applied: %+v", inspect)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		var inspect Inspect
		if _, err := Load(&inspect, filepath.Join(t.TempDir(), "none.yaml")); err != nil {
			t.Fatal(err)
		}
		if inspect.Format != "text" {
			t.Errorf("defaults not applied: %+v", inspect)
		}
	})
	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		os.WriteFile(path, []byte("format: [\n"), 0644)
		var inspect Inspect
		if _, err := Load(&inspect, path); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestSetBoxes(t *testing.T) {
	var inspect Inspect
	inspect.SetBoxes("moof, traf,,trun")
	if !slices.Equal(inspect.OnlyBoxes, []string{"moof", "traf", "trun"}) {
		t.Errorf("boxes %v", inspect.OnlyBoxes)
	}
}
