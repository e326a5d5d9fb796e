package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/gookit/config/v2"
	"github.com/gookit/config/v2/dotnev"
	"github.com/gookit/config/v2/toml"

	appconfig "github.com/omnibuildplatform/omni-cql/common/config"
)

var (
	Config    *config.Config
	AppConfig appconfig.Config
)

func Bootstrap(configDir string, appInfo *ApplicationInfo) {
	initAppEnv()
	loadConfig(configDir)
	Info = appInfo
	initApp()
	initLogger()
	color.Info.Printf(
		"============ Bootstrap (EnvName: %s, Debug: %v) ============\n",
		EnvName, Debug,
	)
}

func initApp() {
	Name = config.String("name", DefaultAppName)
	if httpPort := config.Int("httpPort", 0); httpPort != 0 {
		HttpPort = httpPort
	}
}

func loadConfig(configDir string) {
	files, err := getConfigFiles(configDir)
	if err != nil {
		color.Error.Printf("failed to load config files in folder %s %v\n", configDir, err)
		os.Exit(1)
	}
	config.WithOptions(config.ParseEnv)
	Config = config.Default()
	config.AddDriver(toml.Driver)
	err = Config.LoadFiles(files...)
	if err != nil {
		color.Error.Println("failed to load config files %v", err)
		os.Exit(1)
	}
	err = config.BindStruct("", &AppConfig)
	if err != nil {
		color.Error.Println("config file mismatched with current config object %v", err)
		os.Exit(1)
	}
	if AppConfig.ServerConfig.HttpPort != 0 {
		HttpPort = AppConfig.ServerConfig.HttpPort
	}
}

// getConfigFiles collects app.toml plus the environment overlay
// (<env>.app.toml) found under configDir.
func getConfigFiles(configDir string) ([]string, error) {
	var files = make([]string, 0)
	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Name() == BaseConfigFile || info.Name() == fmt.Sprintf("%s.%s", EnvName, BaseConfigFile) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return files, err
	}
	return files, nil
}

func initAppEnv() {
	err := dotnev.LoadExists(".", ".env")
	if err != nil {
		color.Error.Println(err.Error())
	}

	Hostname, _ = os.Hostname()
	if env := os.Getenv("APP_ENV"); env != "" {
		EnvName = env
	}

	if EnvName == EnvDev || EnvName == EnvTest {
		gin.SetMode(gin.DebugMode)
		Debug = true
	} else {
		gin.SetMode(gin.ReleaseMode)
		Debug = false
	}
}
