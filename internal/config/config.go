package config

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Config корневая структура конфигурации сервиса
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Venue    Venue    `toml:"venue"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Venue конфигурация заведения, которой инициализируется каждая новая сессия
type Venue struct {
	// TableSizes: вместимость стола -> количество столов. TOML ключи
	// таблиц всегда строки; нормализуются в int при конвертации.
	TableSizes map[string]int `toml:"table_sizes"`

	// Hours: пары (открытие, закрытие) в слотах от начала недели
	Hours [][]int64 `toml:"hours"`

	Menu []MenuItem `toml:"menu"`
}

// MenuItem один пункт меню из конфигурации
type MenuItem struct {
	ID          int      `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Price       float64  `toml:"price"`
	PrepMinutes int      `toml:"prep_minutes"`
	Allergens   []string `toml:"allergens"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if len(c.Venue.TableSizes) == 0 {
		return fmt.Errorf("config: venue.table_sizes must not be empty")
	}
	for _, pair := range c.Venue.Hours {
		if len(pair) != 2 {
			return fmt.Errorf("config: venue.hours entries must be [open, close] pairs")
		}
		if pair[0] < 0 || pair[1] > domain.SlotsPerWeek || pair[0] >= pair[1] {
			return fmt.Errorf("config: venue.hours pair [%d, %d] is not a valid week-relative interval", pair[0], pair[1])
		}
	}
	seen := make(map[int]bool, len(c.Venue.Menu))
	for _, item := range c.Venue.Menu {
		if item.ID <= 0 {
			return fmt.Errorf("config: menu item %q must have a positive id", item.Name)
		}
		if seen[item.ID] {
			return fmt.Errorf("config: duplicate menu item id %d", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// ToVenueConfig конвертирует секцию venue в доменную модель, нормализуя
// строковые ключи вместимостей в int
func (v Venue) ToVenueConfig() (domain.VenueConfig, error) {
	sizes := make(map[int]int, len(v.TableSizes))
	for key, count := range v.TableSizes {
		capacity, err := strconv.Atoi(key)
		if err != nil {
			return domain.VenueConfig{}, fmt.Errorf("config: non-integer table capacity %q", key)
		}
		sizes[capacity] = count
	}

	hours := make(domain.OpeningHours, 0, len(v.Hours))
	for _, pair := range v.Hours {
		hours = append(hours, domain.HoursInterval{
			Open:  domain.Slot(pair[0]),
			Close: domain.Slot(pair[1]),
		})
	}

	menu := make(domain.Menu, len(v.Menu))
	for _, item := range v.Menu {
		menu[item.ID] = domain.MenuItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			PrepMinutes: item.PrepMinutes,
			Allergens:   item.Allergens,
		}
	}

	return domain.VenueConfig{
		Bands: domain.NewTableBands(sizes),
		Hours: hours,
		Menu:  menu,
	}, nil
}
