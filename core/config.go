package core

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string `mapstructure:"env"`
		Build        string `mapstructure:"build"`
		AppName      string `mapstructure:"appName" validate:"required"`
		Debug        bool   `mapstructure:"debug"`
		TestMode     bool   `mapstructure:"testMode"`
		RollbarToken string `mapstructure:"rollbarToken"`
		StaticDir    string `mapstructure:"staticDir" validate:"required"`

		Server    ServerConfig    `mapstructure:"server"`
		Auth      AuthConfig      `mapstructure:"auth"`
		CORS      CORSConfig      `mapstructure:"cors"`
		RateLimit RateLimitConfig `mapstructure:"rateLimit"`
		Health    HealthConfig    `mapstructure:"health"`
	}

	ServerConfig struct {
		Host            string        `mapstructure:"host"`
		Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
		DebugHost       string        `mapstructure:"debugHost"`
		ReadTimeout     time.Duration `mapstructure:"readTimeout"`
		WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" validate:"gt=0"`
	}

	AuthConfig struct {
		Mode               string        `mapstructure:"mode" validate:"oneof=static jwt"`
		SecretKey          string        `mapstructure:"secretKey" validate:"required_if=Mode jwt"`
		JWTExpirationDelta time.Duration `mapstructure:"jwtExpirationDelta"`
	}

	CORSConfig struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins" validate:"min=1"`
	}

	RateLimitConfig struct {
		LoginPerMinute int           `mapstructure:"loginPerMinute" validate:"gte=0"` // 0 disables
		Window         time.Duration `mapstructure:"window" validate:"gt=0"`
		RedisAddr      string        `mapstructure:"redisAddr" validate:"omitempty,hostname_port"`
	}

	HealthConfig struct {
		URL         string        `mapstructure:"url" validate:"required,url"`
		Attempts    int           `mapstructure:"attempts" validate:"min=1"`
		Interval    time.Duration `mapstructure:"interval" validate:"gt=0"`
		MaxInterval time.Duration `mapstructure:"maxInterval" validate:"gtefield=Interval"`
		Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	}
)

// Address returns the API listen address.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func defaults(conf *viper.Viper) {
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("appName", "SOLVO")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("staticDir", "public")

	conf.SetDefault("server.host", "")
	conf.SetDefault("server.port", 3000)
	conf.SetDefault("server.debugHost", "localhost:4000")
	conf.SetDefault("server.readTimeout", 5*time.Second)
	conf.SetDefault("server.writeTimeout", 5*time.Second)
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)

	conf.SetDefault("auth.mode", "static")
	conf.SetDefault("auth.secretKey", "")
	conf.SetDefault("auth.jwtExpirationDelta", 7*24*time.Hour)

	conf.SetDefault("cors.allowedOrigins", []string{"*"})

	conf.SetDefault("rateLimit.loginPerMinute", 20)
	conf.SetDefault("rateLimit.window", time.Minute)
	conf.SetDefault("rateLimit.redisAddr", "")

	conf.SetDefault("health.url", "http://localhost:3000/api/health")
	conf.SetDefault("health.attempts", 3)
	conf.SetDefault("health.interval", 500*time.Millisecond)
	conf.SetDefault("health.maxInterval", 4*time.Second)
	conf.SetDefault("health.timeout", 2*time.Second)
}

// NewConfig loads the configuration for the environment named by $ENV: DEV (local; default), TEST, QA, PROD.
// Every key can be overridden by a prefixed env var, eg. DEV_SERVER_PORT; $PORT overrides the port in any env.
func NewConfig() (*Config, error) {
	conf := viper.New()
	defaults(conf)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	case "QA", "PROD":
		conf.SetDefault("debug", false)
	}
	conf.SetDefault("env", env)
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err = os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	conf.AutomaticEnv()
	if err = conf.BindEnv("server.port", "PORT"); err != nil {
		return nil, errors.Wrap(err, "binding PORT")
	}

	var cfg Config
	if err = conf.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}
