package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix starts the name of every environment override, e.g. INSPECT_FORMAT.
const EnvPrefix = "INSPECT"

type Config struct {
	Ptr      reflect.Value // the configured field, priority: environment > user file > default
	Env      any           // value from the environment
	File     any           // value from the user file
	Default  any           // value from the default tag
	name     string        // lower case
	propsMap map[string]*Config
	props    []*Config
	tag      reflect.StructTag
}

func (config *Config) Get(key string) (v *Config) {
	if config.propsMap == nil {
		config.propsMap = make(map[string]*Config)
	}
	if v, ok := config.propsMap[key]; ok {
		return v
	}
	v = &Config{name: key}
	config.propsMap[key] = v
	config.props = append(config.props, v)
	return v
}

func (config *Config) Has(key string) (ok bool) {
	if config.propsMap == nil {
		return false
	}
	_, ok = config.propsMap[strings.ToLower(key)]
	return ok
}

func (config *Config) GetValue() any {
	return config.Ptr.Interface()
}

// Parse reads the default tags of the struct s points to, then the environment.
func (config *Config) Parse(s any, prefix ...string) {
	var t reflect.Type
	var v reflect.Value
	if vv, ok := s.(reflect.Value); ok {
		t, v = vv.Type(), vv
	} else {
		t, v = reflect.TypeOf(s), reflect.ValueOf(s)
	}
	if t.Kind() == reflect.Pointer {
		t, v = t.Elem(), v.Elem()
	}

	config.Ptr = v
	config.Default = v.Interface()

	if t.Kind() != reflect.Struct {
		if tag := config.tag.Get("default"); tag != "" {
			v.Set(config.assign(config.name, tag))
			config.Default = v.Interface()
		}
		if envValue := os.Getenv(strings.Join(prefix, "_")); envValue != "" {
			v.Set(config.assign(config.name, envValue))
			config.Env = v.Interface()
		}
		return
	}
	for i, j := 0, t.NumField(); i < j; i++ {
		ft, fv := t.Field(i), v.Field(i)
		if !ft.IsExported() {
			continue
		}
		name := strings.ToLower(ft.Name)
		if tag := ft.Tag.Get("yaml"); tag != "" {
			if tag == "-" {
				continue
			}
			name, _, _ = strings.Cut(tag, ",")
		}
		prop := config.Get(name)
		prop.tag = ft.Tag
		prop.Parse(fv, append(prefix, strings.ToUpper(ft.Name))...)
	}
}

// ParseUserFile applies the values read from the user file to every field
// that the environment did not set.
func (config *Config) ParseUserFile(conf map[string]any) {
	if conf == nil {
		return
	}
	config.File = conf
	for k, v := range conf {
		k = strings.ToLower(k)
		if !config.Has(k) {
			slog.Warn("unknown config key", "key", k)
			continue
		}
		if prop := config.Get(k); prop.props != nil {
			if m, ok := v.(map[string]any); ok {
				prop.ParseUserFile(m)
			}
		} else {
			fv := prop.assign(k, v)
			prop.File = fv.Interface()
			if prop.Env == nil {
				prop.Ptr.Set(fv)
			}
		}
	}
}

func (config *Config) GetMap() map[string]any {
	m := make(map[string]any)
	for k, v := range config.propsMap {
		if v.props != nil {
			if vv := v.GetMap(); vv != nil {
				m[k] = vv
			}
		} else if v.GetValue() != nil {
			m[k] = v.GetValue()
		}
	}
	if len(m) > 0 {
		return m
	}
	return nil
}

// assign converts v, a YAML value or a string, to the type of the field.
func (config *Config) assign(k string, v any) (target reflect.Value) {
	ft := config.Ptr.Type()
	if s, ok := v.(string); ok && ft.Kind() == reflect.String {
		return reflect.ValueOf(s).Convert(ft)
	}
	tmpStruct := reflect.StructOf([]reflect.StructField{
		{
			Name: strings.ToUpper(k),
			Type: ft,
		},
	})
	tmpValue := reflect.New(tmpStruct)
	if v != nil {
		var out []byte
		if vv, ok := v.(string); ok {
			out = []byte(fmt.Sprintf("%s: %s", k, vv))
		} else {
			out, _ = yaml.Marshal(map[string]any{k: v})
		}
		if err := yaml.Unmarshal(out, tmpValue.Interface()); err != nil {
			slog.Warn("invalid config value", "key", k, "value", v, "error", err)
		}
	}
	return tmpValue.Elem().Field(0)
}

func ReadFile(path string) (conf map[string]any, err error) {
	var content []byte
	if content, err = os.ReadFile(path); err != nil {
		return
	}
	err = yaml.Unmarshal(content, &conf)
	return
}

// Load fills target from its defaults, the YAML file at path and the
// environment. A missing file is not an error.
func Load(target any, path string) (*Config, error) {
	var conf Config
	conf.Parse(target, EnvPrefix)
	if path == "" {
		return &conf, nil
	}
	file, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &conf, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	conf.ParseUserFile(file)
	return &conf, nil
}
