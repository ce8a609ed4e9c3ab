package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen   string   `koanf:"listen"`
	Frontend Frontend `koanf:"frontend"`
	Storage  Storage  `koanf:"storage"`
	Widget   Widget   `koanf:"widget"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Storage struct {
	// Dir is the shared storage directory read by both the app surface
	// and the widget surface.
	Dir string `koanf:"dir"`
}

type Widget struct {
	// Refresh is a cron spec for the widget entry refresh cadence.
	Refresh string `koanf:"refresh"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Listen: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Storage: Storage{
			Dir: "./data",
		},
		Widget: Widget{
			Refresh: "@hourly",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "TIMELEFT_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TIMELEFT_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
