package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	FrontendURL    string   `mapstructure:"frontend_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// IsPostgres reports whether the configured driver is PostgreSQL. Anything
// else is treated as MySQL.
func (d *DatabaseConfig) IsPostgres() bool {
	switch strings.ToLower(d.Driver) {
	case "postgres", "postgresql", "pgx":
		return true
	}
	return false
}

func (d *DatabaseConfig) GetDSN() string {
	if d.IsPostgres() {
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	AdminAddress string `mapstructure:"admin_address"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ServiceConfig describes the public identity of the platform. Tenant
// hostnames are issued as subdomains of Domain.
type ServiceConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	PublicIP string `mapstructure:"public_ip"`
}

type StripeConfig struct {
	SecretKey         string `mapstructure:"secret_key"`
	WebhookSecret     string `mapstructure:"webhook_secret"`
	SuccessURL        string `mapstructure:"success_url"`
	CancelURL         string `mapstructure:"cancel_url"`
	PortalReturnURL   string `mapstructure:"portal_return_url"`
	WebhookToleranceS int    `mapstructure:"webhook_tolerance_seconds"`
}

type StorageConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	UsePathStyle  bool   `mapstructure:"use_path_style"`
	MaxUploadMB   int    `mapstructure:"max_upload_mb"`
}

type DNSConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	HostedZoneID  string  `mapstructure:"hosted_zone_id"`
	Region        string  `mapstructure:"region"`
	AccessKey     string  `mapstructure:"access_key"`
	SecretKey     string  `mapstructure:"secret_key"`
	TTL           int64   `mapstructure:"ttl"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
}

type RateLimitConfig struct {
	Enabled             bool `mapstructure:"enabled"`
	RequestsPerMinute   int  `mapstructure:"requests_per_minute"`
	AuthRequestsPerHour int  `mapstructure:"auth_requests_per_hour"`
}

type SchedulerConfig struct {
	Enabled                  bool `mapstructure:"enabled"`
	StoreSyncIntervalMinutes int  `mapstructure:"store_sync_interval_minutes"`
}

func (s *SchedulerConfig) StoreSyncInterval() time.Duration {
	if s.StoreSyncIntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(s.StoreSyncIntervalMinutes) * time.Minute
}
