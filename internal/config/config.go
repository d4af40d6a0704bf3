package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort         string
	StoreBaseURL    string
	StoreTimeoutSec int // 0 = sem timeout (comportamento legado: espera indefinidamente)
	CadastroDBPath  string
	CadastroHashPwd bool
	RedisAddr       string
	RedisPassword   string
	AllowOrigins    string
	AdminPanelPath  string
}

func Load() Config {
	timeout, _ := strconv.Atoi(get("STORE_TIMEOUT_SEC", "0"))
	hash, _ := strconv.ParseBool(get("CADASTRO_HASH_SENHA", "false"))
	return Config{
		AppPort:         get("APP_PORT", "8080"),
		StoreBaseURL:    get("STORE_BASE_URL", "http://localhost:3000"),
		StoreTimeoutSec: timeout,
		CadastroDBPath:  get("CADASTRO_DB_PATH", "./portal.db"),
		CadastroHashPwd: hash,
		RedisAddr:       get("REDIS_ADDR", ""),
		RedisPassword:   get("REDIS_PASSWORD", ""),
		AllowOrigins:    get("ALLOW_ORIGINS", "http://127.0.0.1:5500, http://localhost:5500"),
		AdminPanelPath:  get("ADMIN_PANEL_PATH", "/admin"),
	}
}

func (c Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSec) * time.Second
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
