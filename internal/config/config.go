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
	Addr     string   `koanf:"addr"`
	Database Database `koanf:"db"`
	Auth     Auth     `koanf:"auth"`
	Upload   Upload   `koanf:"upload"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Auth struct {
	JWTSecret  string `koanf:"jwtsecret"`
	TokenTTL   string `koanf:"tokenttl"`
	BcryptCost int    `koanf:"bcryptcost"`
}

type Upload struct {
	// MaxSize limits the accepted multipart body, in bytes.
	MaxSize int64 `koanf:"maxsize"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":7000",
		Database: Database{
			Path: "pmodesk.db",
		},
		Auth: Auth{
			TokenTTL:   "168h",
			BcryptCost: 10,
		},
		Upload: Upload{
			MaxSize: 32 << 20,
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
		Prefix: "PMODESK_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "PMODESK_")), "_", ".")
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
